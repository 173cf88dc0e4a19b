package adder_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/arrlist/internal/adder"
	"github.com/vmunix/arrlist/internal/adder/mocks"
	"github.com/vmunix/arrlist/internal/arr"
	"github.com/vmunix/arrlist/internal/arr/arrtest"
	"github.com/vmunix/arrlist/internal/catalog"
	"github.com/vmunix/arrlist/internal/defaults"
	"github.com/vmunix/arrlist/internal/lists"
	"github.com/vmunix/arrlist/internal/reconcile"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	target     *mocks.MockTarget
	resolver   *mocks.MockDefaultsResolver
	reconciler *mocks.MockReconciler
	notifier   *mocks.MockNotifier
	adder      *adder.Adder
}

func newFixture(t *testing.T, kind catalog.Kind) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		target:     mocks.NewMockTarget(ctrl),
		resolver:   mocks.NewMockDefaultsResolver(ctrl),
		reconciler: mocks.NewMockReconciler(ctrl),
		notifier:   mocks.NewMockNotifier(ctrl),
	}
	f.target.EXPECT().Kind().Return(kind).AnyTimes()
	f.adder = adder.New(f.target, f.resolver, f.reconciler,
		adder.WithNotifier(f.notifier), adder.WithLogger(testLogger()))
	return f
}

func imdbItem(id string) lists.Item {
	return lists.Item{Source: catalog.SourceIMDB, ExternalID: id, AddedAt: time.Now()}
}

func shawshank() *catalog.Record {
	return &catalog.Record{
		Kind:        catalog.KindMovie,
		Title:       "The Shawshank Redemption",
		Year:        1994,
		ExternalIDs: catalog.ExternalIDs{TMDB: 278, IMDB: "tt0111161"},
	}
}

var movieDefaults = defaults.Defaults{RootFolderPath: "/movies", QualityProfileID: 4}

func TestAdd_Added(t *testing.T) {
	f := newFixture(t, catalog.KindMovie)
	item := imdbItem("tt0111161")
	stored := shawshank()
	stored.ServiceID = 17

	f.target.EXPECT().Supports(catalog.SourceIMDB).Return(true)
	f.target.EXPECT().LookupByExternalID(gomock.Any(), catalog.SourceIMDB, "tt0111161").Return(shawshank(), nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), defaults.Defaults{}).Return(movieDefaults, nil)
	f.target.EXPECT().Submit(gomock.Any(), catalog.AddRequest{
		Record:           *shawshank(),
		RootFolderPath:   "/movies",
		QualityProfileID: 4,
	}).Return(stored, nil)

	out := f.adder.Add(context.Background(), item, adder.Options{})

	assert.True(t, out.OK)
	assert.Empty(t, out.Reason)
	assert.Equal(t, adder.StateAdded, out.State())
	assert.Equal(t, item, out.Item)
	require.NotNil(t, out.Record)
	assert.Equal(t, int64(17), out.Record.ServiceID)
}

func TestAdd_Unsupported(t *testing.T) {
	f := newFixture(t, catalog.KindSeries)
	item := lists.Item{Source: catalog.SourceTMDB, ExternalID: "1396"}

	f.target.EXPECT().Supports(catalog.SourceTMDB).Return(false)

	out := f.adder.Add(context.Background(), item, adder.Options{Notify: true})
	assert.False(t, out.OK)
	assert.Equal(t, adder.ReasonUnsupported, out.Reason)
}

func TestAdd_UnsupportedFromLookup(t *testing.T) {
	f := newFixture(t, catalog.KindSeries)
	f.target.EXPECT().Supports(gomock.Any()).Return(true)
	f.target.EXPECT().LookupByExternalID(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("series lookup by tmdb id: %w", catalog.ErrUnsupported))

	out := f.adder.Add(context.Background(), lists.Item{Source: catalog.SourceTMDB, ExternalID: "1"}, adder.Options{})
	assert.Equal(t, adder.ReasonUnsupported, out.Reason)
}

func TestAdd_InvalidItem(t *testing.T) {
	f := newFixture(t, catalog.KindMovie)

	out := f.adder.Add(context.Background(), lists.Item{Source: catalog.SourceIMDB}, adder.Options{})
	assert.Equal(t, adder.ReasonError, out.Reason)
	assert.Contains(t, out.Detail, "invalid list item")
}

func TestAdd_NotFoundNeverRaises(t *testing.T) {
	f := newFixture(t, catalog.KindMovie)
	f.target.EXPECT().Supports(catalog.SourceIMDB).Return(true)
	f.target.EXPECT().LookupByExternalID(gomock.Any(), catalog.SourceIMDB, "tt9999999").Return(nil, nil)

	out := f.adder.Add(context.Background(), imdbItem("tt9999999"), adder.Options{Notify: true})

	assert.False(t, out.OK)
	assert.Equal(t, adder.ReasonNotFound, out.Reason)
	assert.Nil(t, out.Record)
}

func TestAdd_DefaultsFailure(t *testing.T) {
	f := newFixture(t, catalog.KindMovie)
	f.target.EXPECT().Supports(gomock.Any()).Return(true)
	f.target.EXPECT().LookupByExternalID(gomock.Any(), gomock.Any(), gomock.Any()).Return(shawshank(), nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return(defaults.Defaults{}, fmt.Errorf("root folder \"\": %w", defaults.ErrNoDefaults))

	out := f.adder.Add(context.Background(), imdbItem("tt0111161"), adder.Options{})

	assert.Equal(t, adder.ReasonError, out.Reason)
	assert.Contains(t, out.Detail, "no usable add defaults")
}

func TestAdd_OverridePassedToResolver(t *testing.T) {
	f := newFixture(t, catalog.KindMovie)
	override := defaults.Defaults{RootFolderPath: "/4k", QualityProfileID: 9}

	f.target.EXPECT().Supports(gomock.Any()).Return(true)
	f.target.EXPECT().LookupByExternalID(gomock.Any(), gomock.Any(), gomock.Any()).Return(shawshank(), nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), override).Return(override, nil)
	f.target.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req catalog.AddRequest) (*catalog.Record, error) {
			assert.Equal(t, "/4k", req.RootFolderPath)
			assert.Equal(t, 9, req.QualityProfileID)
			return &req.Record, nil
		})

	out := f.adder.Add(context.Background(), imdbItem("tt0111161"), adder.Options{Override: override})
	assert.True(t, out.OK)
}

func TestAdd_ExistsReconciled(t *testing.T) {
	f := newFixture(t, catalog.KindMovie)
	rejection := &arr.RejectionError{
		Service:    "radarr",
		StatusCode: http.StatusBadRequest,
		Failures:   []arr.ValidationFailure{{ErrorCode: "MovieExistsValidator", ErrorMessage: "This movie has already been added"}},
	}
	stored := shawshank()
	stored.ServiceID = 3

	f.target.EXPECT().Supports(gomock.Any()).Return(true)
	f.target.EXPECT().LookupByExternalID(gomock.Any(), gomock.Any(), gomock.Any()).Return(shawshank(), nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(movieDefaults, nil)
	f.target.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, rejection)
	f.reconciler.EXPECT().Reconcile(gomock.Any(), rejection, gomock.Any()).
		Return(reconcile.Result{Exists: true, Record: stored})

	out := f.adder.Add(context.Background(), imdbItem("tt0111161"), adder.Options{})

	assert.False(t, out.OK)
	assert.Equal(t, adder.ReasonExists, out.Reason)
	require.NotNil(t, out.Record)
	assert.Equal(t, int64(3), out.Record.ServiceID)
}

func TestAdd_UnrelatedRejectionIsError(t *testing.T) {
	f := newFixture(t, catalog.KindMovie)
	rejection := &arr.RejectionError{
		Service:    "radarr",
		StatusCode: http.StatusBadRequest,
		Failures:   []arr.ValidationFailure{{ErrorCode: "NotEmptyValidator", ErrorMessage: "'Root Folder Path' must not be empty."}},
	}

	f.target.EXPECT().Supports(gomock.Any()).Return(true)
	f.target.EXPECT().LookupByExternalID(gomock.Any(), gomock.Any(), gomock.Any()).Return(shawshank(), nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(movieDefaults, nil)
	f.target.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, rejection)
	f.reconciler.EXPECT().Reconcile(gomock.Any(), rejection, gomock.Any()).Return(reconcile.Result{})

	out := f.adder.Add(context.Background(), imdbItem("tt0111161"), adder.Options{Notify: true})

	assert.Equal(t, adder.ReasonError, out.Reason)
	assert.Contains(t, out.Detail, "must not be empty")
	assert.Nil(t, out.Record)
}

func TestAdd_NotifiesDirectActions(t *testing.T) {
	f := newFixture(t, catalog.KindMovie)
	f.target.EXPECT().Supports(gomock.Any()).Return(true)
	f.target.EXPECT().LookupByExternalID(gomock.Any(), gomock.Any(), gomock.Any()).Return(shawshank(), nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(movieDefaults, nil)
	f.target.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(shawshank(), nil)
	f.notifier.EXPECT().NotifyAdded(gomock.Any(), *shawshank(), false).Return(errors.New("ntfy down"))

	out := f.adder.Add(context.Background(), imdbItem("tt0111161"), adder.Options{Notify: true})
	assert.True(t, out.OK, "notification failures are not escalated")
}

func TestAdd_NotifiesExistsWithLookupRecord(t *testing.T) {
	f := newFixture(t, catalog.KindMovie)
	f.target.EXPECT().Supports(gomock.Any()).Return(true)
	f.target.EXPECT().LookupByExternalID(gomock.Any(), gomock.Any(), gomock.Any()).Return(shawshank(), nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(movieDefaults, nil)
	f.target.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, errors.New("rejected"))
	f.reconciler.EXPECT().Reconcile(gomock.Any(), gomock.Any(), gomock.Any()).Return(reconcile.Result{Exists: true})
	f.notifier.EXPECT().NotifyAdded(gomock.Any(), *shawshank(), true).Return(nil)

	out := f.adder.Add(context.Background(), imdbItem("tt0111161"), adder.Options{Notify: true})
	assert.Equal(t, adder.ReasonExists, out.Reason)
	assert.Nil(t, out.Record)
}

func TestAdd_BatchDoesNotNotify(t *testing.T) {
	f := newFixture(t, catalog.KindMovie)
	f.target.EXPECT().Supports(gomock.Any()).Return(true)
	f.target.EXPECT().LookupByExternalID(gomock.Any(), gomock.Any(), gomock.Any()).Return(shawshank(), nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(movieDefaults, nil)
	f.target.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(shawshank(), nil)
	// No NotifyAdded expectation: any call fails the test.

	out := f.adder.Add(context.Background(), imdbItem("tt0111161"), adder.Options{Notify: false})
	assert.True(t, out.OK)
}

func TestSummarize(t *testing.T) {
	s := adder.Summarize([]adder.Outcome{
		{OK: true},
		{Reason: adder.ReasonExists},
		{Reason: adder.ReasonExists},
		{Reason: adder.ReasonNotFound},
		{Reason: adder.ReasonUnsupported},
		{Reason: adder.ReasonError},
	})
	assert.Equal(t, adder.Summary{Added: 1, Exists: 2, NotFound: 1, Unsupported: 1, Failed: 1}, s)
}

// newMovieAdder wires the real collaborators against a fake Radarr.
func newMovieAdder(srv *arrtest.Server) *adder.Adder {
	client := srv.Client()
	movies := catalog.NewMovies(client, nil, catalog.WithLogger(testLogger()))
	return adder.New(movies,
		defaults.NewResolver(client, defaults.Defaults{}, testLogger()),
		reconcile.New(movies, testLogger()),
		adder.WithLogger(testLogger()))
}

func TestAdd_AgainstRadarr(t *testing.T) {
	srv := arrtest.NewRadarr(t).
		WithLookup(map[string]any{"title": "The Shawshank Redemption", "year": 1994, "tmdbId": 278, "imdbId": "tt0111161"}).
		WithRootFolders("/movies").
		WithProfiles(1).
		Start()
	a := newMovieAdder(srv)

	first := a.Add(context.Background(), imdbItem("tt0111161"), adder.Options{})
	require.True(t, first.OK, first.Detail)
	assert.Equal(t, int64(278), first.Record.ExternalIDs.TMDB)

	second := a.Add(context.Background(), imdbItem("tt0111161"), adder.Options{})
	assert.False(t, second.OK)
	assert.Equal(t, adder.ReasonExists, second.Reason)
	require.NotNil(t, second.Record)
	assert.Equal(t, first.Record.ServiceID, second.Record.ServiceID)
	assert.Len(t, srv.Stored(), 1, "no duplicate creation")
}
