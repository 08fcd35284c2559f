package kv_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"jobify-backend/internal/domain"
	"jobify-backend/internal/repository/kv"
	"jobify-backend/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore reads from an inner store but refuses every write.
type failingStore struct {
	kvstore.Store
}

func (failingStore) Set(context.Context, string, string) error {
	return errors.New("quota exceeded")
}

func sampleJob(id, company string) domain.Job {
	return domain.Job{
		ID:          id,
		Company:     company,
		Position:    "Engineer",
		Location:    "Remote",
		JobType:     domain.JobTypeFullTime,
		JobStatus:   domain.JobStatusPending,
		DateApplied: "2025-09-01",
	}
}

func TestJobRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("load of an empty store is empty", func(t *testing.T) {
		repo := kv.NewJobRepository(kvstore.NewMemory())
		jobs := repo.Load(ctx)
		assert.NotNil(t, jobs)
		assert.Empty(t, jobs)
	})

	t.Run("save then load round-trips", func(t *testing.T) {
		repo := kv.NewJobRepository(kvstore.NewMemory())
		want := []domain.Job{sampleJob("1", "Google"), sampleJob("2", "Meta")}

		require.NoError(t, repo.Save(ctx, want))
		assert.Equal(t, want, repo.Load(ctx))

		require.NoError(t, repo.Save(ctx, repo.Load(ctx)))
		assert.Equal(t, want, repo.Load(ctx))
	})

	t.Run("add prepends and getById finds it", func(t *testing.T) {
		repo := kv.NewJobRepository(kvstore.NewMemory())
		_, err := repo.Add(ctx, sampleJob("1", "Google"))
		require.NoError(t, err)
		jobs, err := repo.Add(ctx, sampleJob("2", "Meta"))
		require.NoError(t, err)

		require.Len(t, jobs, 2)
		assert.Equal(t, "2", jobs[0].ID)

		got, ok := repo.GetByID(ctx, "1")
		assert.True(t, ok)
		assert.Equal(t, "Google", got.Company)
	})

	t.Run("update replaces the matching record only", func(t *testing.T) {
		repo := kv.NewJobRepository(kvstore.NewMemory())
		require.NoError(t, repo.Save(ctx, []domain.Job{sampleJob("1", "Google"), sampleJob("2", "Meta")}))

		changed := sampleJob("2", "Meta Platforms")
		jobs, err := repo.Update(ctx, changed)
		require.NoError(t, err)
		assert.Equal(t, "Google", jobs[0].Company)
		assert.Equal(t, "Meta Platforms", jobs[1].Company)

		jobs, err = repo.Update(ctx, sampleJob("404", "Nobody"))
		require.NoError(t, err)
		assert.Len(t, jobs, 2)
	})

	t.Run("delete then getById is absent", func(t *testing.T) {
		repo := kv.NewJobRepository(kvstore.NewMemory())
		require.NoError(t, repo.Save(ctx, []domain.Job{sampleJob("1", "Google")}))

		jobs, err := repo.Delete(ctx, "1")
		require.NoError(t, err)
		assert.Empty(t, jobs)

		_, ok := repo.GetByID(ctx, "1")
		assert.False(t, ok)
	})

	t.Run("corrupt payload loads as empty", func(t *testing.T) {
		store := kvstore.NewMemory()
		require.NoError(t, store.Set(ctx, kv.JobsKey, `{not json`))

		repo := kv.NewJobRepository(store)
		assert.Empty(t, repo.Load(ctx))

		jobs, err := repo.Add(ctx, sampleJob("1", "Google"))
		require.NoError(t, err)
		assert.Len(t, jobs, 1)
	})

	t.Run("null payload loads as empty", func(t *testing.T) {
		store := kvstore.NewMemory()
		require.NoError(t, store.Set(ctx, kv.JobsKey, `null`))
		assert.Empty(t, kv.NewJobRepository(store).Load(ctx))
	})

	t.Run("failed save is reported with the intended collection", func(t *testing.T) {
		repo := kv.NewJobRepository(failingStore{kvstore.NewMemory()})

		jobs, err := repo.Add(ctx, sampleJob("1", "Google"))
		assert.Error(t, err)
		assert.Len(t, jobs, 1)
		assert.Empty(t, repo.Load(ctx))
	})

	t.Run("seed only fills an empty collection", func(t *testing.T) {
		repo := kv.NewJobRepository(kvstore.NewMemory())

		jobs, err := repo.Seed(ctx, []domain.Job{sampleJob("1", "Google"), sampleJob("2", "Meta")})
		require.NoError(t, err)
		assert.Len(t, jobs, 2)

		jobs, err = repo.Seed(ctx, []domain.Job{sampleJob("3", "Apple")})
		require.NoError(t, err)
		assert.Len(t, jobs, 2)
	})

	t.Run("clear removes the collection", func(t *testing.T) {
		store := kvstore.NewMemory()
		repo := kv.NewJobRepository(store)
		require.NoError(t, repo.Save(ctx, []domain.Job{sampleJob("1", "Google")}))

		require.NoError(t, repo.Clear(ctx))
		_, found, _ := store.Get(ctx, kv.JobsKey)
		assert.False(t, found)
	})
}

func TestCVRepositorySetActive(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name   string
		active []bool
	}{
		{"none active", []bool{false, false, false}},
		{"one other active", []bool{true, false, false}},
		{"several active", []bool{true, true, true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := kv.NewCVRepository(kvstore.NewMemory())
			var cvs []domain.CV
			for i, a := range tc.active {
				cvs = append(cvs, domain.CV{ID: string(rune('a' + i)), Name: "cv", IsActive: a})
			}
			require.NoError(t, repo.Save(ctx, cvs))

			updated, err := repo.SetActive(ctx, "b")
			require.NoError(t, err)

			activeCount := 0
			for _, cv := range repo.Load(ctx) {
				if cv.IsActive {
					activeCount++
					assert.Equal(t, "b", cv.ID)
				}
			}
			assert.Equal(t, 1, activeCount)
			assert.Len(t, updated, len(tc.active))

			got, ok := repo.GetActive(ctx)
			assert.True(t, ok)
			assert.Equal(t, "b", got.ID)
		})
	}

	t.Run("no active cv", func(t *testing.T) {
		repo := kv.NewCVRepository(kvstore.NewMemory())
		_, ok := repo.GetActive(ctx)
		assert.False(t, ok)
	})
}

func TestCollectionConcurrency(t *testing.T) {
	ctx := context.Background()

	t.Run("parallel adds over a file store keep every record", func(t *testing.T) {
		store, err := kvstore.NewFile(t.TempDir())
		require.NoError(t, err)
		repo := kv.NewJobRepository(store)

		const n = 200
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := repo.Add(ctx, sampleJob(fmt.Sprintf("job-%d", i), "Google"))
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		assert.Len(t, repo.Load(ctx), n)
	})

	t.Run("parallel mutates and clears never interleave", func(t *testing.T) {
		coll := kv.NewCollection[domain.Job](kvstore.NewMemory(), kv.JobsKey)

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(2)
			go func(i int) {
				defer wg.Done()
				_, err := coll.Add(ctx, sampleJob(fmt.Sprintf("job-%d", i), "Meta"))
				assert.NoError(t, err)
			}(i)
			go func() {
				defer wg.Done()
				assert.NoError(t, coll.Clear(ctx))
			}()
		}
		wg.Wait()
		require.NoError(t, coll.Clear(ctx))

		assert.Empty(t, coll.Load(ctx))
	})

	t.Run("mutate returning nil leaves the store untouched", func(t *testing.T) {
		store := kvstore.NewMemory()
		coll := kv.NewCollection[domain.Job](store, kv.JobsKey)
		require.NoError(t, coll.Save(ctx, []domain.Job{sampleJob("1", "Google")}))
		before, _, err := store.Get(ctx, kv.JobsKey)
		require.NoError(t, err)

		got, err := coll.Mutate(ctx, func([]domain.Job) []domain.Job { return nil })
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "1", got[0].ID)

		after, _, err := store.Get(ctx, kv.JobsKey)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("mutate returning nil skips a failing store", func(t *testing.T) {
		coll := kv.NewCollection[domain.Job](failingStore{kvstore.NewMemory()}, kv.JobsKey)
		_, err := coll.Mutate(ctx, func([]domain.Job) []domain.Job { return nil })
		assert.NoError(t, err)
	})
}
