package project_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/smarty/model/diagram"
	"github.com/viant/smarty/model/project"
)

func TestProject_AddLink(t *testing.T) {
	f := newFixture(t)
	sequence := diagram.New(diagram.KindSequence, "Flow")
	f.project.AddDiagram(sequence)
	lifeline := diagram.NewBasic("lifeline", "customer")
	_, err := f.project.AddElement(sequence.ID(), lifeline)
	require.NoError(t, err)

	testCases := []struct {
		description string
		object      diagram.Object
		tagID       string
		expect      bool
	}{
		{description: "taggable feature", object: f.card, tagID: "STEREOTYPE#2", expect: true},
		{description: "repeated link is a no-op", object: f.card, tagID: "STEREOTYPE#2", expect: false},
		{description: "second tag on the same object", object: f.card, tagID: "STEREOTYPE#8", expect: true},
		{description: "lifeline does not allow tags", object: lifeline, tagID: "STEREOTYPE#2", expect: false},
		{description: "unknown tag", object: f.cash, tagID: "STEREOTYPE#99", expect: false},
		{description: "nil object", object: nil, tagID: "STEREOTYPE#1", expect: false},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			assert.Equal(t, testCase.expect, f.project.AddLink(testCase.object, testCase.tagID))
		})
	}

	links := f.project.LinksFor(f.card.ID())
	require.Len(t, links, 2)
	assert.Equal(t, "LINK#FEATURE#2-STEREOTYPE#2", links[0].ID)
	assert.Empty(t, f.project.LinksFor(lifeline.ID()))
	assert.Equal(t, "optional stereotype", f.project.StereotypesString(f.card.ID()))
	assert.Equal(t, f.project.StereotypesString(f.card.ID()), f.project.StereotypesString(f.card.ID()))

	link, ok := f.project.Link(f.card.ID(), "STEREOTYPE#8")
	require.True(t, ok)
	assert.Equal(t, f.card.ID(), link.ObjectID)
	assert.True(t, f.project.Contains(link.ID))

	assert.Equal(t, 2, f.project.RemoveLinksFor(f.card.ID()))
	assert.Empty(t, f.project.LinksFor(f.card.ID()))
	assert.False(t, f.project.Contains(link.ID))
}

func TestProject_Tags(t *testing.T) {
	f := newFixture(t)
	entityTag := &project.Tag{Name: " entity "}
	id := f.project.AddTag(entityTag)
	assert.Equal(t, "STEREOTYPE#9", id)
	assert.Equal(t, "entity", entityTag.Name)
	found, ok := f.project.TagByName("entity")
	require.True(t, ok)
	assert.Equal(t, id, found.ID)

	require.True(t, f.project.AddLink(f.customer, id))
	require.True(t, f.project.AddLink(f.total, id))
	assert.Len(t, f.project.LinksForTag(id), 2)

	f.project.Profile.Bind(project.RoleMandatory, id)
	assert.False(t, f.project.RemoveTag("STEREOTYPE#1"))
	require.True(t, f.project.RemoveTag(id))
	assert.Empty(t, f.project.LinksForTag(id))
	assert.Equal(t, "STEREOTYPE#1", f.project.Profile.Tag(project.RoleMandatory))
	_, ok = f.project.Tag(id)
	assert.False(t, ok)
	assert.False(t, f.project.Contains(id))
}

func TestProject_AssociationTagging(t *testing.T) {
	f := newFixture(t)
	testCases := []struct {
		description string
		category    diagram.Category
		expectTags  string
	}{
		{description: "requires", category: diagram.CategoryRequires, expectTags: "requires"},
		{description: "mutex", category: diagram.CategoryMutex, expectTags: "mutex"},
		{description: "dependency allows tags but gets none", category: diagram.CategoryDependency, expectTags: ""},
		{description: "composition", category: diagram.CategoryComposition, expectTags: ""},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			association := diagram.NewAssociation(testCase.category, f.card.ID(), f.cash.ID())
			id, err := f.project.AddAssociation(f.features.ID(), association)
			require.NoError(t, err)
			assert.Equal(t, testCase.expectTags, f.project.StereotypesString(id))
		})
	}

	_, err := f.project.AddAssociation(f.features.ID(), diagram.NewAssociation(diagram.CategoryRequires, f.card.ID(), "FEATURE#99"))
	assert.ErrorIs(t, err, project.ErrUnknownReference)

	composition := diagram.NewAssociation(diagram.CategoryComposition, f.card.ID(), f.cash.ID())
	_, err = f.project.AddAssociation(f.features.ID(), composition)
	require.NoError(t, err)
	assert.False(t, f.project.AddLink(composition, "STEREOTYPE#8"))
}

func TestVariantTag(t *testing.T) {
	profile := project.DefaultProfile()
	assert.Equal(t, "STEREOTYPE#4", project.VariantTag(profile, project.ConstraintInclusive))
	assert.Equal(t, "STEREOTYPE#5", project.VariantTag(profile, project.ConstraintExclusive))

	feature := diagram.NewFeature("Root", true)
	assert.Equal(t, "", project.DefaultTagFor(profile, feature))
	feature.Default = true
	assert.Equal(t, "STEREOTYPE#1", project.DefaultTagFor(profile, feature))
	note := diagram.NewBasic("note", "n")
	note.Default = true
	assert.Equal(t, "", project.DefaultTagFor(profile, note))
}
