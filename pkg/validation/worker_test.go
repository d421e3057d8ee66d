package validation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lareferencia/harvester/pkg/domain"
	"github.com/lareferencia/harvester/pkg/stats"
	"github.com/lareferencia/harvester/pkg/validation"
	"github.com/lareferencia/harvester/pkg/worker"
)

const (
	validRecordXML   = `<metadata><element name="dc"><element name="title"><field>A title</field></element><element name="language"><field>es</field></element></element></metadata>`
	invalidRecordXML = `<metadata><element name="dc"><element name="title"><field>Other</field></element><element name="language"><field>fr</field></element></element></metadata>`
)

type fakeStore struct {
	snapshot *domain.Snapshot
	records  []domain.Record
	metadata map[string]string

	statuses  map[int64]domain.RecordStatus
	published map[int64]string
	resets    int
	saved     *domain.Snapshot
}

func newFakeStore(snapshot *domain.Snapshot) *fakeStore {
	return &fakeStore{
		snapshot:  snapshot,
		metadata:  make(map[string]string),
		statuses:  make(map[int64]domain.RecordStatus),
		published: make(map[int64]string),
	}
}

func (s *fakeStore) addRecord(id int64, identifier, xml string) {
	hash := identifier + "-hash"
	s.metadata[hash] = xml
	s.records = append(s.records, domain.Record{
		ID:                   id,
		SnapshotID:           s.snapshot.ID,
		Identifier:           identifier,
		Status:               domain.RecordStatusUntested,
		OriginalMetadataHash: hash,
	})
}

func (s *fakeStore) FindLastGoodKnownSnapshot(context.Context, int64) (*domain.Snapshot, error) {
	return s.snapshot, nil
}

func (s *fakeStore) FindLastHarvestingSnapshot(context.Context, int64) (*domain.Snapshot, error) {
	return s.snapshot, nil
}

func (s *fakeStore) UntestedRecordsPaginator(_ context.Context, _ int64, pageSize int) (worker.Paginator[domain.Record], error) {
	return worker.NewSlicePaginator(s.records, pageSize), nil
}

func (s *fakeStore) NotDeletedRecordsPaginator(_ context.Context, _ int64, pageSize int) (worker.Paginator[domain.Record], error) {
	return worker.NewSlicePaginator(s.records, pageSize), nil
}

func (s *fakeStore) OriginalMetadata(_ context.Context, record *domain.Record) (string, error) {
	return s.metadata[record.OriginalMetadataHash], nil
}

func (s *fakeStore) UpdatePublishedMetadata(_ context.Context, record *domain.Record, xml string) error {
	s.published[record.ID] = xml
	return nil
}

func (s *fakeStore) UpdateRecordStatus(_ context.Context, record *domain.Record, status domain.RecordStatus, transformed bool) error {
	s.statuses[record.ID] = status
	record.Status = status
	record.Transformed = transformed
	return nil
}

func (s *fakeStore) ResetSnapshotValidationCounts(context.Context, int64) error {
	s.resets++
	return nil
}

func (s *fakeStore) UpdateSnapshotStatus(_ context.Context, _ int64, status domain.SnapshotStatus) error {
	s.snapshot.Status = status
	return nil
}

func (s *fakeStore) SaveSnapshot(_ context.Context, snapshot *domain.Snapshot) error {
	saved := *snapshot
	s.saved = &saved
	return nil
}

type fakeRuleStore struct {
	validatorRows   []validation.ValidatorRuleRow
	transformerRows []validation.TransformerRuleRow
}

func (r *fakeRuleStore) ValidatorRules(context.Context, int64) ([]validation.ValidatorRuleRow, error) {
	return r.validatorRows, nil
}

func (r *fakeRuleStore) TransformerRules(context.Context, int64) ([]validation.TransformerRuleRow, error) {
	return r.transformerRows, nil
}

type fakeSink struct {
	available  bool
	registered []stats.Observation
	deleted    []int64
}

func (s *fakeSink) IsAvailable(context.Context) bool { return s.available }

func (s *fakeSink) RegisterObservations(_ context.Context, obs []stats.Observation) error {
	s.registered = append(s.registered, obs...)
	return nil
}

func (s *fakeSink) DeleteSnapshotObservations(_ context.Context, snapshotID int64) error {
	s.deleted = append(s.deleted, snapshotID)
	return nil
}

func serializedConfig(t *testing.T, rule any) []byte {
	t.Helper()
	raw, err := validation.SerializeRule(rule)
	require.NoError(t, err)
	return raw
}

func testNetwork() *domain.Network {
	validatorID := int64(1)
	transformerID := int64(2)
	return &domain.Network{
		ID:            7,
		Name:          "Test Repository",
		Acronym:       "TEST",
		ValidatorID:   &validatorID,
		TransformerID: &transformerID,
		Properties: map[string]string{
			domain.PropValidate:         "true",
			domain.PropTransform:        "true",
			domain.PropDiagnose:         "true",
			domain.PropDetailedDiagnose: "true",
		},
	}
}

func testRuleStore(t *testing.T) *fakeRuleStore {
	return &fakeRuleStore{
		validatorRows: []validation.ValidatorRuleRow{{
			ID:         10,
			Name:       "language vocabulary",
			Mandatory:  true,
			Quantifier: validation.QuantifierOneOrMore,
			JSONConfig: serializedConfig(t, validation.NewControlledValueRule("dc.language", []string{"es", "en", "pt"})),
		}},
		transformerRows: []validation.TransformerRuleRow{{
			ID:         20,
			Name:       "add access rights",
			RunOrder:   1,
			JSONConfig: serializedConfig(t, validation.NewFieldAddRule("dc.rights", "openAccess")),
		}},
	}
}

func TestValidationWorkerRun(t *testing.T) {
	t.Parallel()

	t.Run("full pass over a snapshot", func(t *testing.T) {
		snapshot := &domain.Snapshot{ID: 100, NetworkID: 7, Size: 2}
		store := newFakeStore(snapshot)
		store.addRecord(1, "oai:test:1", validRecordXML)
		store.addRecord(2, "oai:test:2", invalidRecordXML)
		sink := &fakeSink{available: true}

		rc := worker.NewRunningContext(testNetwork(), false)
		vw := validation.NewWorker(rc, store, testRuleStore(t), sink, validation.WithPageSize(10))
		bw := worker.New[domain.Record](rc, vw)

		require.NoError(t, bw.Run(context.Background()))

		assert.Equal(t, domain.RecordStatusValid, store.statuses[1])
		assert.Equal(t, domain.RecordStatusInvalid, store.statuses[2])

		// Both records were transformed, so both carry published metadata.
		assert.Contains(t, store.published[1], "openAccess")
		assert.Contains(t, store.published[2], "openAccess")

		require.NotNil(t, store.saved)
		assert.Equal(t, domain.SnapshotStatusValid, store.saved.Status)
		assert.Equal(t, 1, store.saved.ValidSize)
		assert.Equal(t, 2, store.saved.TransformedSize)
		assert.Equal(t, 1, store.resets)

		assert.Equal(t, []int64{100}, sink.deleted)
		require.Len(t, sink.registered, 2)

		valid, invalid := sink.registered[0], sink.registered[1]
		assert.True(t, valid.IsValid)
		assert.Equal(t, []int64{10}, valid.ValidRuleIDs)
		assert.False(t, invalid.IsValid)
		assert.Equal(t, []int64{10}, invalid.InvalidRuleIDs)
		assert.Equal(t, []string{"fr"}, invalid.InvalidOccurrences["10"])
	})

	t.Run("no snapshot stops without error", func(t *testing.T) {
		store := newFakeStore(nil)
		rc := worker.NewRunningContext(testNetwork(), false)
		vw := validation.NewWorker(rc, store, testRuleStore(t), nil)
		bw := worker.New[domain.Record](rc, vw)

		require.NoError(t, bw.Run(context.Background()))
		assert.True(t, bw.Stopped())
		assert.Nil(t, store.saved)
	})

	t.Run("no validator means every record is valid", func(t *testing.T) {
		snapshot := &domain.Snapshot{ID: 101, NetworkID: 7}
		store := newFakeStore(snapshot)
		store.addRecord(1, "oai:test:1", invalidRecordXML)

		network := testNetwork()
		network.ValidatorID = nil

		rc := worker.NewRunningContext(network, false)
		vw := validation.NewWorker(rc, store, testRuleStore(t), nil)
		bw := worker.New[domain.Record](rc, vw)

		require.NoError(t, bw.Run(context.Background()))
		assert.Equal(t, domain.RecordStatusValid, store.statuses[1])
	})

	t.Run("switched off passes do not run", func(t *testing.T) {
		snapshot := &domain.Snapshot{ID: 102, NetworkID: 7}
		store := newFakeStore(snapshot)
		store.addRecord(1, "oai:test:1", validRecordXML)

		network := testNetwork()
		network.Properties = map[string]string{domain.PropValidate: "true"}

		rc := worker.NewRunningContext(network, false)
		vw := validation.NewWorker(rc, store, testRuleStore(t), nil)
		bw := worker.New[domain.Record](rc, vw)

		require.NoError(t, bw.Run(context.Background()))
		assert.Empty(t, store.published, "transform switch off leaves metadata untouched")
		assert.Equal(t, domain.RecordStatusValid, store.statuses[1])
	})

	t.Run("malformed metadata is fatal", func(t *testing.T) {
		snapshot := &domain.Snapshot{ID: 103, NetworkID: 7}
		store := newFakeStore(snapshot)
		store.addRecord(1, "oai:test:1", "<metadata><unclosed")
		store.addRecord(2, "oai:test:2", validRecordXML)

		rc := worker.NewRunningContext(testNetwork(), false)
		vw := validation.NewWorker(rc, store, testRuleStore(t), nil)
		bw := worker.New[domain.Record](rc, vw)

		err := bw.Run(context.Background())
		require.ErrorIs(t, err, worker.ErrItemProcessing)
		assert.True(t, bw.Stopped())
		assert.Empty(t, store.statuses, "no record outcome was persisted")
	})
}
