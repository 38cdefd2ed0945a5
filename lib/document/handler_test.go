package documenthandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	documentstore "staff-portal-backend/lib/document/store"
	"staff-portal-backend/lib/utils/clock"
	"staff-portal-backend/models"
	documentapimodels "staff-portal-backend/models/api/document"
)

func newTestProvider(t *testing.T) (Provider, *clock.Stub) {
	t.Helper()
	clk := clock.NewStub(time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC))
	return NewInstance(documentstore.NewInstance(nil), clk), clk
}

func TestAddStartsAtVersionOne(t *testing.T) {
	provider, _ := newTestProvider(t)
	rec := provider.Add("u1", documentapimodels.UploadRequest{
		Title:    "Employment Contract",
		Category: "Contracts",
		Size:     "120 KB",
		FileType: "pdf",
	})
	require.Equal(t, 1, rec.Version)
	require.Equal(t, models.DocumentPending, rec.Status)
	require.Empty(t, rec.History)
	require.Equal(t, "u1", rec.UserID)
}

func TestVersionMonotonicity(t *testing.T) {
	provider, clk := newTestProvider(t)
	rec := provider.Add("u1", documentapimodels.UploadRequest{
		Title:    "Appraisal Form",
		Category: "HR Forms",
		Size:     "80 KB",
		FileType: "pdf",
	})
	prior := rec

	clk.Advance(time.Hour)
	next, err := provider.AddVersion(rec.ID, documentapimodels.UploadRequest{
		Title:    "Appraisal Form (signed)",
		Category: "HR Forms",
		Size:     "95 KB",
		FileType: "pdf",
	})
	require.Nil(t, err)
	require.Equal(t, prior.Version+1, next.Version)
	require.Len(t, next.History, 1)
	// history[0] archives the whole prior record
	require.Equal(t, prior.Snapshot(), next.History[0])

	clk.Advance(time.Hour)
	third, err := provider.AddVersion(rec.ID, documentapimodels.UploadRequest{
		Title:    "Appraisal Form (final)",
		Category: "HR Forms",
		Size:     "97 KB",
		FileType: "pdf",
	})
	require.Nil(t, err)
	require.Equal(t, 3, third.Version)
	require.Len(t, third.History, 2)
	// superseded versions only, most recent first
	require.Equal(t, next.Snapshot(), third.History[0])
	require.Equal(t, prior.Snapshot(), third.History[1])
}

func TestSetStatusPatchesStatusOnly(t *testing.T) {
	provider, _ := newTestProvider(t)
	rec := provider.Add("u1", documentapimodels.UploadRequest{Title: "ID Scan", Category: "Identity"})
	next, err := provider.AddVersion(rec.ID, documentapimodels.UploadRequest{Title: "ID Scan", Category: "Identity"})
	require.Nil(t, err)

	require.Nil(t, provider.SetStatus(rec.ID, models.DocumentApproved))
	got, err := provider.Get(rec.ID)
	require.Nil(t, err)
	require.Equal(t, models.DocumentApproved, got.Status)
	require.Equal(t, next.Version, got.Version)
	require.Equal(t, next.History, got.History)

	t.Run("unknown id", func(t *testing.T) {
		require.ErrorIs(t, provider.SetStatus("missing", models.DocumentRejected), ErrNotFound)
	})
	t.Run("pending is not a decision", func(t *testing.T) {
		require.NotNil(t, provider.SetStatus(rec.ID, models.DocumentPending))
	})
}

func TestListByUser(t *testing.T) {
	provider, _ := newTestProvider(t)
	provider.Add("u1", documentapimodels.UploadRequest{Title: "A", Category: "c"})
	provider.Add("u2", documentapimodels.UploadRequest{Title: "B", Category: "c"})
	provider.Add("u1", documentapimodels.UploadRequest{Title: "C", Category: "c"})

	mine := provider.ListByUser("u1")
	require.Len(t, mine, 2)
	require.Len(t, provider.List(), 3)
}
