package records

import (
	"context"
	"fmt"
	"sort"
)

//go:generate mockgen -source=$GOFILE -destination=records_mocks_test.go -package=records_test

// Store is the transactional side of the record repo.
type Store interface {
	GetOrCreateForUpdate(ctx context.Context, userID, exerciseID int) (*ExerciseRecord, error)
	Apply(ctx context.Context, update Update) (*ExerciseRecord, error)
}

// Updater keeps exercise records in line with logged sets. It must be built on
// a Store bound to the transaction that persists the sets.
type Updater struct {
	store Store
}

func NewUpdater(store Store) *Updater {
	return &Updater{
		store: store,
	}
}

// LockRecords get-or-creates and locks the records of all given exercises in
// ascending exercise id order, so two sessions touching the same exercises never
// wait on each other in opposite order.
func (u *Updater) LockRecords(ctx context.Context, userID int, exerciseIDs []int) (map[int]*ExerciseRecord, error) {
	ids := uniqueSorted(exerciseIDs)
	locked := make(map[int]*ExerciseRecord, len(ids))
	for _, id := range ids {
		rec, err := u.store.GetOrCreateForUpdate(ctx, userID, id)
		if err != nil {
			return nil, fmt.Errorf("lock record for exercise %d: %w", id, err)
		}
		locked[id] = rec
	}
	return locked, nil
}

// ApplyEntry adds the entry's reps to the lifetime total and moves the personal
// record when the entry's weight is strictly greater than the current one.
// The returned flag tells whether a new personal record was set.
func (u *Updater) ApplyEntry(ctx context.Context, entry Entry) (_ *ExerciseRecord, newPR bool, err error) {
	rec, err := u.store.GetOrCreateForUpdate(ctx, entry.UserID, entry.ExerciseID)
	if err != nil {
		return nil, false, fmt.Errorf("get record: %w", err)
	}

	update := Update{
		RecordID:  rec.ID,
		RepsDelta: entry.Reps,
	}
	if entry.Weight != nil && entry.Weight.GreaterThan(rec.PersonalRecord) {
		weight := *entry.Weight
		date := entry.SubmissionDate
		update.PersonalRecord = &weight
		update.DateOfPR = &date
		newPR = true
	}

	updated, err := u.store.Apply(ctx, update)
	if err != nil {
		return nil, false, fmt.Errorf("apply record update: %w", err)
	}

	return updated, newPR, nil
}

func uniqueSorted(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
