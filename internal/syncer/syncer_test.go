package syncer_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/arrlist/internal/adder"
	"github.com/vmunix/arrlist/internal/catalog"
	"github.com/vmunix/arrlist/internal/lists"
	"github.com/vmunix/arrlist/internal/syncer"
	"github.com/vmunix/arrlist/internal/syncer/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func item(src catalog.Source, id string) lists.Item {
	return lists.Item{Source: src, ExternalID: id, AddedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestSyncList_SequentialInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockListSource(ctrl)
	add := mocks.NewMockItemAdder(ctrl)

	items := []lists.Item{
		item(catalog.SourceIMDB, "tt0111161"),
		item(catalog.SourceTMDB, "238"),
		item(catalog.SourceIMDB, "tt0071562"),
	}
	src.EXPECT().Get("classics").Return(lists.List{Name: "classics", Items: items}, nil)

	gomock.InOrder(
		add.EXPECT().Add(gomock.Any(), items[0], adder.Options{}).Return(adder.Outcome{Item: items[0], OK: true}),
		add.EXPECT().Add(gomock.Any(), items[1], adder.Options{}).Return(adder.Outcome{Item: items[1], Reason: adder.ReasonError, Detail: "radarr POST /movie: service unavailable"}),
		add.EXPECT().Add(gomock.Any(), items[2], adder.Options{}).Return(adder.Outcome{Item: items[2], Reason: adder.ReasonExists}),
	)

	d := syncer.New(src, map[catalog.Kind]syncer.ItemAdder{catalog.KindMovie: add}, testLogger())
	res, err := d.SyncList(context.Background(), "classics", catalog.KindMovie)

	require.NoError(t, err)
	require.Len(t, res.Outcomes, 3)
	assert.True(t, res.Outcomes[0].OK)
	assert.Equal(t, adder.ReasonError, res.Outcomes[1].Reason)
	assert.Equal(t, adder.ReasonExists, res.Outcomes[2].Reason)
	assert.Equal(t, adder.Summary{Added: 1, Exists: 1, Failed: 1}, res.Summary)
	assert.Equal(t, "classics", res.List)
	assert.Equal(t, catalog.KindMovie, res.Target)

	_, err = uuid.Parse(res.RunID)
	assert.NoError(t, err)
}

func TestSyncList_EmptyList(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockListSource(ctrl)
	add := mocks.NewMockItemAdder(ctrl)
	src.EXPECT().Get("empty").Return(lists.List{Name: "empty", Items: []lists.Item{}}, nil)

	d := syncer.New(src, map[catalog.Kind]syncer.ItemAdder{catalog.KindSeries: add}, testLogger())
	res, err := d.SyncList(context.Background(), "empty", catalog.KindSeries)

	require.NoError(t, err)
	assert.NotNil(t, res.Outcomes)
	assert.Empty(t, res.Outcomes)
}

func TestSyncList_UnknownList(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockListSource(ctrl)
	add := mocks.NewMockItemAdder(ctrl)
	src.EXPECT().Get("nope").Return(lists.List{}, lists.ErrNotFound)

	d := syncer.New(src, map[catalog.Kind]syncer.ItemAdder{catalog.KindMovie: add}, testLogger())
	_, err := d.SyncList(context.Background(), "nope", catalog.KindMovie)
	assert.ErrorIs(t, err, lists.ErrNotFound)
}

func TestSyncList_TargetUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockListSource(ctrl)

	d := syncer.New(src, map[catalog.Kind]syncer.ItemAdder{catalog.KindSeries: nil}, testLogger())
	_, err := d.SyncList(context.Background(), "classics", catalog.KindSeries)
	assert.ErrorIs(t, err, syncer.ErrTargetUnavailable)
	assert.Empty(t, d.Targets())
}

func TestSyncList_NeverNotifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockListSource(ctrl)
	add := mocks.NewMockItemAdder(ctrl)
	it := item(catalog.SourceIMDB, "tt0111161")
	src.EXPECT().Get("l").Return(lists.List{Name: "l", Items: []lists.Item{it}}, nil)
	add.EXPECT().Add(gomock.Any(), it, gomock.Any()).DoAndReturn(
		func(_ context.Context, i lists.Item, opts adder.Options) adder.Outcome {
			assert.False(t, opts.Notify)
			return adder.Outcome{Item: i, OK: true}
		})

	d := syncer.New(src, map[catalog.Kind]syncer.ItemAdder{catalog.KindMovie: add}, testLogger())
	_, err := d.SyncList(context.Background(), "l", catalog.KindMovie)
	require.NoError(t, err)
}
