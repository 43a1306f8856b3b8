package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Allen-Pinto/Highway-Delite/internal/domain"
	"github.com/Allen-Pinto/Highway-Delite/internal/service/ports"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/wb-go/wbf/dbpg"
)

const seededExperienceID = "6f1c2a34-0d5e-4b7a-9c11-1a2b3c4d5e01"

// startPostgres поднимает postgres в контейнере и накатывает миграции с сидом.
func startPostgres(t *testing.T) *dbpg.DB {
	t.Helper()

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "bookit",
				"POSTGRES_PASSWORD": "bookit",
				"POSTGRES_DB":       "bookit",
			},
			// первый раз сообщение пишет init-скрипт, второй раз настоящий сервер
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://bookit:bookit@%s:%s/bookit?sslmode=disable", host, port.Port())

	sqlDB, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	defer sqlDB.Close()
	require.NoError(t, goose.Up(sqlDB, "../../migrations"))

	db, err := dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 30, MaxIdleConns: 10})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Master.Close() })

	return db
}

func TestStore_ConcurrentReservationsDoNotOverbook(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping Postgres integration test in short mode")
	}

	db := startPostgres(t)
	store := NewStore(db)
	experiences := NewExperienceRepo(db)
	ctx := context.Background()

	exp, err := experiences.GetByID(ctx, seededExperienceID)
	require.NoError(t, err)
	require.NotEmpty(t, exp.Slots)
	slot := exp.Slots[0]
	capacity := slot.AvailableSpots - slot.BookedSpots
	require.Positive(t, capacity)

	workers := capacity + 10
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		reserved   int
		rejected   int
		unexpected []error
	)
	start := make(chan struct{})

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start

			err := store.RunInTx(ctx, func(tx ports.Tx) error {
				locked, err := tx.GetExperienceForUpdate(ctx, seededExperienceID)
				if err != nil {
					return err
				}
				s, err := locked.Reserve(slot.ID, 1, time.Now())
				if err != nil {
					return err
				}
				return tx.UpdateSlotBookedSpots(ctx, s.ID, s.BookedSpots)
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				reserved++
			case errors.Is(err, domain.ErrInsufficientCapacity):
				rejected++
			default:
				unexpected = append(unexpected, err)
			}
		}()
	}
	close(start)
	wg.Wait()

	require.Empty(t, unexpected)
	assert.Equal(t, capacity, reserved)
	assert.Equal(t, workers-capacity, rejected)

	after, err := experiences.GetByID(ctx, seededExperienceID)
	require.NoError(t, err)
	got := after.Slot(slot.ID)
	require.NotNil(t, got)
	assert.Equal(t, got.AvailableSpots, got.BookedSpots)
}

func TestExperienceRepository_List_WildcardsMatchLiterally(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping Postgres integration test in short mode")
	}

	db := startPostgres(t)
	experiences := NewExperienceRepo(db)
	ctx := context.Background()

	all, err := experiences.List(ctx, domain.ExperienceFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, all)

	for _, term := range []string{"%", "_", `\`} {
		list, err := experiences.List(ctx, domain.ExperienceFilter{Search: term})
		require.NoError(t, err)
		assert.Empty(t, list, "search %q", term)
	}

	list, err := experiences.List(ctx, domain.ExperienceFilter{Location: "kerala"})
	require.NoError(t, err)
	assert.Len(t, list, 3)
}
