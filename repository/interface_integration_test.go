//go:build integration
// +build integration

package repository

import (
	"context"
	"errors"
	"github.com/QuangTung97/club-reminder/pkg/integration"
	"github.com/stretchr/testify/assert"
	"testing"
)

func newContext() context.Context {
	return context.Background()
}

func TestProvider_Readonly__GetReadonly(t *testing.T) {
	tc := integration.NewTestCase()

	p := NewProvider(tc.DB)
	ctx := p.Readonly(newContext())

	db := GetReadonly(ctx)

	var version string
	err := db.GetContext(ctx, &version, "SELECT VERSION()")
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__GetTransaction(t *testing.T) {
	tc := integration.NewTestCase()

	var version string

	p := NewProvider(tc.DB)
	err := p.Transact(newContext(), func(ctx context.Context) error {
		tx := GetTx(ctx)

		err := tx.GetContext(ctx, &version, "SELECT VERSION()")
		assert.Equal(t, nil, err)

		return nil
	})
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__GetReadonly(t *testing.T) {
	tc := integration.NewTestCase()

	var version string

	p := NewProvider(tc.DB)
	err := p.Transact(newContext(), func(ctx context.Context) error {
		db := GetReadonly(ctx)

		err := db.GetContext(ctx, &version, "SELECT VERSION()")
		assert.Equal(t, nil, err)

		return nil
	})
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__Rollback_On_Error(t *testing.T) {
	tc := integration.NewTestCase()
	tc.Truncate("event_rsvp")

	p := NewProvider(tc.DB)
	repo := NewRSVP()

	someErr := errors.New("some error")
	err := p.Transact(newContext(), func(ctx context.Context) error {
		err := repo.UpsertRSVP(ctx, newRSVP("ev01", "u01", "going"))
		assert.Equal(t, nil, err)
		return someErr
	})
	assert.Equal(t, someErr, err)

	rsvps, err := repo.FindRSVPsByEvents(p.Readonly(newContext()), []string{"ev01"})
	assert.Equal(t, nil, err)
	assert.Nil(t, rsvps)
}

func TestProvider_Transact__Multi_Calls_Multi_Levels(t *testing.T) {
	tc := integration.NewTestCase()

	var version string

	p := NewProvider(tc.DB)
	err := p.Transact(newContext(), func(ctx context.Context) error {
		return p.Transact(ctx, func(ctx context.Context) error {
			tx := GetTx(ctx)

			err := tx.GetContext(ctx, &version, "SELECT VERSION()")
			assert.Equal(t, nil, err)

			return nil
		})
	})
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}
