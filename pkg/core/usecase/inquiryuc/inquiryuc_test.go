// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package inquiryuc_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aerovista/avweb/pkg/core/cerr"
	"github.com/aerovista/avweb/pkg/core/limiter"
	"github.com/aerovista/avweb/pkg/core/model"
	"github.com/aerovista/avweb/pkg/core/repo"
	"github.com/aerovista/avweb/pkg/core/usecase/inquiryuc"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePool hands a nil connection to the handler. The fake repository
// ignores the connection, so the use case wiring can be exercised
// without a database.
type fakePool struct{}

func (fakePool) Conn(ctx context.Context, handler repo.ConnHandler) error {
	return handler(ctx, nil)
}

// fakeInquiriesRepo keeps the inquiries in memory, newest first.
type fakeInquiriesRepo struct {
	mutex     sync.Mutex
	inquiries []model.Inquiry
}

func (r *fakeInquiriesRepo) Conn(repo.Conn) repo.InquiriesConnQueryer {
	return r
}

func (r *fakeInquiriesRepo) Tx(repo.Tx) repo.InquiriesTxQueryer {
	return r
}

func (r *fakeInquiriesRepo) Create(_ context.Context, i *model.Inquiry) (*model.Inquiry, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	stored := *i
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.inquiries = append([]model.Inquiry{stored}, r.inquiries...)
	return &stored, nil
}

func (r *fakeInquiriesRepo) ListAll(context.Context) ([]model.Inquiry, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	all := make([]model.Inquiry, len(r.inquiries))
	copy(all, r.inquiries)
	return all, nil
}

func (r *fakeInquiriesRepo) Update(_ context.Context, iid uuid.UUID, patch *model.InquiryPatch) (*model.Inquiry, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	for n := range r.inquiries {
		i := &r.inquiries[n]
		if i.ID != iid {
			continue
		}
		if patch.Status != nil {
			i.Status = *patch.Status
			if *patch.Status == model.InquiryStatusResponded {
				now := time.Now()
				i.RespondedAt = &now
			}
		}
		if patch.Priority != nil {
			i.Priority = *patch.Priority
		}
		if patch.AdminNotes != nil {
			notes := *patch.AdminNotes
			i.AdminNotes = &notes
		}
		i.UpdatedAt = time.Now()
		updated := *i
		return &updated, nil
	}
	return nil, cerr.NotFound(errors.New("no such inquiry"))
}

// fakeStore records the incremented keys and reports a fixed window.
type fakeStore struct {
	mutex  sync.Mutex
	counts map[string]int
	keys   []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{counts: make(map[string]int)}
}

func (s *fakeStore) Increment(key string, window time.Duration) (int, time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.counts[key]++
	s.keys = append(s.keys, key)
	return s.counts[key], time.Now().Add(window)
}

// fakeNotifier counts delivered notifications and closes the done
// channel once the first submission was fully announced.
type fakeNotifier struct {
	mutex     sync.Mutex
	once      sync.Once
	admin     int
	confirmed int
	done      chan struct{}
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{done: make(chan struct{})}
}

func (n *fakeNotifier) NotifyAdmin(context.Context, *model.Inquiry) error {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	n.admin++
	return nil
}

func (n *fakeNotifier) ConfirmSubmission(context.Context, *model.Inquiry) error {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	n.confirmed++
	if n.admin > 0 {
		n.once.Do(func() { close(n.done) })
	}
	return nil
}

func newUseCase(t *testing.T, max int) (
	*inquiryuc.UseCase, *fakeInquiriesRepo, *fakeStore, *fakeNotifier,
) {
	t.Helper()
	store := newFakeStore()
	l, err := limiter.New(store, max, 15*time.Minute)
	require.NoError(t, err)
	rp := &fakeInquiriesRepo{}
	notifier := newFakeNotifier()
	uc, err := inquiryuc.New(fakePool{}, rp, l, notifier)
	require.NoError(t, err)
	return uc, rp, store, notifier
}

func submission() inquiryuc.Submission {
	return inquiryuc.Submission{
		FullName:  "Jordan Hale",
		Email:     "jordan@example.com",
		Type:      model.InquiryTypeGeneral,
		Subject:   "Fleet availability",
		Message:   "Looking for a light jet for charter operations.",
		IPAddress: "203.0.113.7",
	}
}

func TestSubmitPersistsWithInitialStatusAndPriority(t *testing.T) {
	uc, rp, _, notifier := newUseCase(t, 5)
	created, rl, err := uc.Submit(context.Background(), submission())
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, model.InquiryStatusNew, created.Status)
	assert.Equal(t, model.PriorityMedium, created.Priority)
	require.NotNil(t, created.IPAddress)
	assert.Equal(t, "203.0.113.7", *created.IPAddress)

	assert.True(t, rl.Allowed)
	assert.Equal(t, 5, rl.Limit)
	assert.Equal(t, 4, rl.Remaining)

	all, err := rp.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)

	select {
	case <-notifier.done:
	case <-time.After(2 * time.Second):
		t.Fatal("notifications were not delivered")
	}
}

func TestSubmitKeysLimitByClientAndEndpoint(t *testing.T) {
	uc, _, store, _ := newUseCase(t, 5)
	_, _, err := uc.Submit(context.Background(), submission())
	require.NoError(t, err)
	require.Len(t, store.keys, 1)
	assert.Equal(t, "203.0.113.7:inquiries", store.keys[0])
}

func TestSubmitRejectsBeyondLimit(t *testing.T) {
	uc, rp, _, _ := newUseCase(t, 2)
	ctx := context.Background()
	for n := 0; n < 2; n++ {
		_, _, err := uc.Submit(ctx, submission())
		require.NoError(t, err)
	}
	created, rl, err := uc.Submit(ctx, submission())
	require.Error(t, err)
	assert.Nil(t, created)

	cerrErr, ok := err.(*cerr.Error)
	require.True(t, ok, "expected a cerr error, got %T", err)
	assert.Equal(t, 429, cerrErr.HTTPStatusCode)

	// the metadata is still reported, for the response headers
	assert.False(t, rl.Allowed)
	assert.Equal(t, 2, rl.Limit)
	assert.Equal(t, 0, rl.Remaining)

	all, err := rp.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2, "a rejected submission must not be stored")
}

func TestSubmitCountsRejectedAttemptsToo(t *testing.T) {
	uc, _, store, _ := newUseCase(t, 1)
	ctx := context.Background()
	for n := 0; n < 4; n++ {
		uc.Submit(ctx, submission())
	}
	assert.Equal(t, 4, store.counts["203.0.113.7:inquiries"],
		"retries beyond the limit must keep counting")
}

func TestListReturnsAllInquiries(t *testing.T) {
	uc, _, _, _ := newUseCase(t, 10)
	ctx := context.Background()
	first := submission()
	second := submission()
	second.Subject = "Financing options"
	second.Type = model.InquiryTypeFinancing
	_, _, err := uc.Submit(ctx, first)
	require.NoError(t, err)
	_, _, err = uc.Submit(ctx, second)
	require.NoError(t, err)

	all, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Financing options", all[0].Subject,
		"newest inquiry must come first")
}

func TestUpdateAppliesPatchAndStampsRespondedAt(t *testing.T) {
	uc, _, _, _ := newUseCase(t, 10)
	ctx := context.Background()
	created, _, err := uc.Submit(ctx, submission())
	require.NoError(t, err)

	status := model.InquiryStatusResponded
	notes := "Sent the spec sheet over email."
	updated, err := uc.Update(ctx, created.ID, &model.InquiryPatch{
		Status:     &status,
		AdminNotes: &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, model.InquiryStatusResponded, updated.Status)
	require.NotNil(t, updated.AdminNotes)
	assert.Equal(t, notes, *updated.AdminNotes)
	assert.NotNil(t, updated.RespondedAt)
	assert.Equal(t, model.PriorityMedium, updated.Priority,
		"unpatched fields must not change")
}

func TestUpdateValidatesPatchedEnums(t *testing.T) {
	uc, _, _, _ := newUseCase(t, 10)
	ctx := context.Background()
	created, _, err := uc.Submit(ctx, submission())
	require.NoError(t, err)

	bad := model.InquiryStatus(42)
	_, err = uc.Update(ctx, created.ID, &model.InquiryPatch{Status: &bad})
	require.Error(t, err)
	cerrErr, ok := err.(*cerr.Error)
	require.True(t, ok)
	assert.Equal(t, 400, cerrErr.HTTPStatusCode)
}

func TestUpdateMissingInquiry(t *testing.T) {
	uc, _, _, _ := newUseCase(t, 10)
	priority := model.PriorityHigh
	_, err := uc.Update(
		context.Background(), uuid.New(),
		&model.InquiryPatch{Priority: &priority},
	)
	require.Error(t, err)
}
