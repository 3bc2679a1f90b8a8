package taxonomy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"spawnredj/taxonomy"
)

func TestHexUnique(t *testing.T) {
	seen := map[byte]string{}
	for _, e := range taxonomy.All() {
		if prev, dup := seen[e.Hex]; dup {
			t.Fatalf("hex %02X assigned to both %q and %q", e.Hex, prev, e.Name)
		}
		seen[e.Hex] = e.Name
	}
}

func TestLookupByName(t *testing.T) {
	e, ok := taxonomy.LookupByName("Rock")
	assert.True(t, ok)
	assert.Equal(t, "A00", e.Code)
	assert.Equal(t, byte(0x00), e.Hex)

	_, ok = taxonomy.LookupByName("polka")
	assert.False(t, ok)
}

func TestRelatedOf(t *testing.T) {
	assert.Equal(t, []string{"blues rock"}, taxonomy.RelatedOf("blues"))
	assert.Equal(t, []string{"folk", "acoustic folk", "piano folk", "country rock"}, taxonomy.RelatedOf("folk rock"))
	assert.Nil(t, taxonomy.RelatedOf("rock"))
	assert.Nil(t, taxonomy.RelatedOf("not a genre"))
}

func TestOrderIndex(t *testing.T) {
	assert.Equal(t, 0, taxonomy.OrderIndex("rock"))
	assert.Less(t, taxonomy.OrderIndex("folk"), taxonomy.OrderIndex("jazz"))

	// absent names sort after everything in the catalog
	assert.Equal(t, taxonomy.Count(), taxonomy.OrderIndex("polka"))
}
