package inspect

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	verdicts map[string]Verdict
	err      error
	gets     int
}

func (s *stubStore) Get(pkg, typ, fingerprint string) (Verdict, bool, error) {
	s.gets++
	if s.err != nil {
		return Verdict{}, false, s.err
	}
	v, ok := s.verdicts[pkg+"."+typ+"@"+fingerprint]
	return v, ok, nil
}

func TestVerdictForReturnsStoredVerdict(t *testing.T) {
	v := newVocabulary()
	tn := v.gather.Obj()

	// The stored verdict deliberately disagrees with what classifying
	// Gather would yield (mutable): getting it back proves the hit
	// short-circuited classification.
	stored := Verdict{
		Pkg:        "example.com/chain",
		Name:       "Gather",
		Capability: CapabilityConst,
		Iterator:   "cached-iterator",
	}
	store := &stubStore{verdicts: map[string]Verdict{
		"example.com/chain.Gather@fp1": stored,
	}}

	ins := &Inspector{Store: store}
	got := ins.verdictFor("example.com/chain", "fp1", tn)
	assert.Equal(t, stored, got)
	assert.Equal(t, 1, store.gets)
}

func TestVerdictForClassifiesOnMiss(t *testing.T) {
	v := newVocabulary()
	tn := v.gather.Obj()

	stored := Verdict{Pkg: "example.com/chain", Name: "Gather", Capability: CapabilityConst}
	store := &stubStore{verdicts: map[string]Verdict{
		"example.com/chain.Gather@fp1": stored,
	}}

	// A changed fingerprint must miss and re-classify.
	ins := &Inspector{Store: store}
	got := ins.verdictFor("example.com/chain", "fp2", tn)
	require.Equal(t, 1, store.gets)
	assert.Equal(t, CapabilityMutable, got.Capability)
	assert.Equal(t, "*"+ViewPackage+".MutableView", got.Iterator)
}

func TestVerdictForIgnoresStoreFailure(t *testing.T) {
	v := newVocabulary()
	tn := v.snapshot.Obj()

	ins := &Inspector{Store: &stubStore{err: errors.New("disk gone")}}
	got := ins.verdictFor("example.com/chain", "fp", tn)
	assert.Equal(t, CapabilityConst, got.Capability, "read failure falls back to classification")
}

func TestVerdictForWithoutStore(t *testing.T) {
	v := newVocabulary()

	ins := &Inspector{}
	got := ins.verdictFor("example.com/chain", "fp", v.regions.Obj())
	assert.Equal(t, CapabilityMutable, got.Capability)
	assert.Equal(t, "Regions", got.Name)
}

// Compile-time check that the cache type in internal/cache satisfies
// VerdictStore lives there; this pins the interface shape itself.
var _ VerdictStore = (*stubStore)(nil)

func TestClassifyNamedFillsVerdict(t *testing.T) {
	v := newVocabulary()

	got := classifyNamed("example.com/chain", v.plain.Obj())
	assert.Equal(t, "example.com/chain.Plain", got.FullName())
	assert.Equal(t, CapabilityNone, got.Capability)
	assert.Empty(t, got.Iterator)

	got = classifyNamed("example.com/chain", v.gather.Obj())
	assert.Equal(t, CapabilityMutable, got.Capability)
	assert.False(t, got.View)
}
