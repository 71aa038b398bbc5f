package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortCandidatesByName(t *testing.T) {
	candidates := []Candidate{
		{Name: "zeta.cs", Ext: "cs"},
		{Name: "alpha.txt", Ext: "txt"},
		{Name: "mid.cs", Ext: "cs"},
	}

	SortCandidates(candidates, SortByName)

	assert.Equal(t, "alpha.txt", candidates[0].Name)
	assert.Equal(t, "mid.cs", candidates[1].Name)
	assert.Equal(t, "zeta.cs", candidates[2].Name)
}

func TestSortCandidatesByTypeGroupsExtensions(t *testing.T) {
	candidates := []Candidate{
		{Name: "b.txt", Ext: "txt"},
		{Name: "z.cs", Ext: "cs"},
		{Name: "a.txt", Ext: "txt"},
		{Name: "a.cs", Ext: "cs"},
	}

	SortCandidates(candidates, SortByType)

	assert.Equal(t, []Candidate{
		{Name: "a.cs", Ext: "cs"},
		{Name: "z.cs", Ext: "cs"},
		{Name: "a.txt", Ext: "txt"},
		{Name: "b.txt", Ext: "txt"},
	}, candidates)
}

func TestSortCandidatesIsStable(t *testing.T) {
	// Same sort keys but distinct paths: scan order must survive.
	candidates := []Candidate{
		{Path: "/x/dup.cs", Name: "dup.cs", Ext: "cs"},
		{Path: "/y/dup.cs", Name: "dup.cs", Ext: "cs"},
		{Path: "/z/dup.cs", Name: "dup.cs", Ext: "cs"},
	}

	SortCandidates(candidates, SortByType)

	assert.Equal(t, "/x/dup.cs", candidates[0].Path)
	assert.Equal(t, "/y/dup.cs", candidates[1].Path)
	assert.Equal(t, "/z/dup.cs", candidates[2].Path)
}
