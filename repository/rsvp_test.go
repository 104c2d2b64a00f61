//go:build integration
// +build integration

package repository

import (
	"context"
	"database/sql"
	"github.com/QuangTung97/club-reminder/model"
	"github.com/QuangTung97/club-reminder/pkg/integration"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestRSVP_FindRSVPsByEvents(t *testing.T) {
	tc := integration.NewTestCase()
	tc.Truncate("event_rsvp")

	provider := NewProvider(tc.DB)
	repo := NewRSVP()

	readCtx := provider.Readonly(newContext())

	rsvps, err := repo.FindRSVPsByEvents(readCtx, nil)
	assert.Equal(t, nil, err)
	assert.Nil(t, rsvps)

	err = provider.Transact(newContext(), func(ctx context.Context) error {
		for _, r := range []model.RSVP{
			newRSVP("ev01", "u02", "going"),
			newRSVP("ev01", "u03", "not_going"),
			{EventID: "ev02", UserID: "u04"},
			newRSVP("ev03", "u05", "going"),
		} {
			if err := repo.UpsertRSVP(ctx, r); err != nil {
				return err
			}
		}
		return nil
	})
	assert.Equal(t, nil, err)

	rsvps, err = repo.FindRSVPsByEvents(readCtx, []string{"ev01", "ev02"})
	assert.Equal(t, nil, err)
	assert.Equal(t, []model.RSVP{
		newRSVP("ev01", "u02", "going"),
		newRSVP("ev01", "u03", "not_going"),
		{EventID: "ev02", UserID: "u04", Status: sql.NullString{}},
	}, rsvps)

	// Upsert changes status
	err = provider.Transact(newContext(), func(ctx context.Context) error {
		return repo.UpsertRSVP(ctx, newRSVP("ev01", "u03", "GOING"))
	})
	assert.Equal(t, nil, err)

	rsvps, err = repo.FindRSVPsByEvents(readCtx, []string{"ev01"})
	assert.Equal(t, nil, err)
	assert.Equal(t, []model.RSVP{
		newRSVP("ev01", "u02", "going"),
		newRSVP("ev01", "u03", "GOING"),
	}, rsvps)
}
