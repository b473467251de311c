package project_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/smarty/model/diagram"
	"github.com/viant/smarty/model/document"
	"github.com/viant/smarty/model/project"
)

func mustParse(t *testing.T, text string) document.Node {
	t.Helper()
	node, err := document.ParseString(text)
	require.NoError(t, err)
	return node
}

// populate adds one record of every kind to the fixture project
func populate(t *testing.T, f *fixture) {
	t.Helper()
	variability := project.NewVariability("method", f.root.ID(), f.card.ID(), f.cash.ID())
	variability.Constraint = project.ConstraintInclusive
	variability.Max = document.Unbounded
	_, err := f.project.AddVariability(variability)
	require.NoError(t, err)
	_, err = f.project.AddAssociation(f.features.ID(), diagram.NewAssociation(diagram.CategoryMutex, f.card.ID(), f.cash.ID()))
	require.NoError(t, err)

	requirement := project.NewRequirement("R1", "Pay \"now\"")
	requirement.Description = "multi\nline & <escaped>"
	f.project.AddRequirement(requirement)
	_, err = f.project.LinkRequirement(requirement.ID, f.card.ID())
	require.NoError(t, err)
	_, err = f.project.AddTraceability(project.NewTraceability("trace", requirement.ID, f.customer.ID()))
	require.NoError(t, err)

	product := project.NewProduct("Basic", "1.0")
	product.Instances = []*project.Instance{project.NewInstance("features", f.features.ID(), f.root.ID(), f.card.ID())}
	_, err = f.project.AddProduct(product)
	require.NoError(t, err)

	metric := project.NewMetric("LOC", "Lines of code")
	f.project.AddMetric(metric)
	_, err = f.project.AddMeasure(project.NewMeasure(metric.ID, f.customer.ID(), 12.5))
	require.NoError(t, err)
	f.project.AddType(project.NewType("com.shop", "Money"))
}

func TestProject_Export(t *testing.T) {
	f := newFixture(t)
	populate(t, f)
	exported := f.project.Export()
	assert.Equal(t, exported, f.project.Export())
	assert.True(t, strings.HasPrefix(exported, `<project id="P1" name="Shop" version="1.0" format="v1.0.0">`+"\n"))
	assert.True(t, strings.HasSuffix(exported, "</project>\n"))

	blocks := []string{"<types>", "<stereotypes>", "<profile", `<diagram id="DIAGRAM#1"`, `<diagram id="DIAGRAM#2"`,
		"<requirements>", "<traceabilities>", "<links>", "<products>", "<metrics>", "<measures>"}
	last := -1
	for _, block := range blocks {
		index := strings.Index(exported, block)
		require.NotEqual(t, -1, index, block)
		assert.Greater(t, index, last, block)
		last = index
	}
	assert.Contains(t, exported, `      <variant id="FEATURE#2"/>`)
	assert.Contains(t, exported, `max="*"`)
	assert.Contains(t, exported, `<measure id="MEASURE#1" name="" metric="METRIC#1" target="CLASS#1" value="12.5"/>`)
	assert.Contains(t, exported, `<link id="LINK#FEATURE#1-STEREOTYPE#3" object="FEATURE#1" stereotype="STEREOTYPE#3"/>`)
}

func TestProject_RoundTrip(t *testing.T) {
	f := newFixture(t)
	populate(t, f)
	exported := f.project.Export()

	loaded, err := project.Load(strings.NewReader(exported))
	require.NoError(t, err)
	assert.Equal(t, exported, loaded.Export())
	assert.False(t, loaded.Modified())
	assert.Equal(t, f.project.Summary().Checksum, loaded.Summary().Checksum)

	element, ok := loaded.Element(f.card.ID())
	require.True(t, ok)
	assert.Equal(t, "Card", element.Name())
	assert.Equal(t, "alternative_OR", loaded.StereotypesString(f.card.ID()))
	assert.Len(t, loaded.VariabilityDiagrams(), 1)
	assert.Equal(t, "TYPE#53", loaded.NextID(project.TypePrefix))

	// removal cascades work on a loaded project
	require.True(t, loaded.RemoveElement(f.customer.ID()))
	assert.True(t, loaded.Modified())
	require.NoError(t, loaded.MarkSaved())
	assert.False(t, loaded.Modified())
}

func TestFromNode(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expectErr   error
		validate    func(t *testing.T, aProject *project.Project)
	}{
		{description: "not a project", input: `<model id="x"/>`, expectErr: project.ErrNotProjectDocument},
		{description: "newer major format", input: `<project id="x" format="v2.0.0"/>`, expectErr: project.ErrUnsupportedVersion},
		{description: "malformed format", input: `<project id="x" format="2.0"/>`, expectErr: project.ErrUnsupportedVersion},
		{
			description: "legacy document without format and bootstrap sections",
			input: `<project id="P" name="Legacy" version="2">
  <diagram id="DIAGRAM#1" name="F" type="Feature">
    <feature id="FEATURE#1" name="Root" mandatory="true" x="1.5" y="oops"/>
    <widget id="W#1"/>
  </diagram>
  <links>
    <link id="LINK#FEATURE#1-STEREOTYPE#1" object="FEATURE#1" stereotype="STEREOTYPE#1"/>
    <link id="LINK#FEATURE#9-STEREOTYPE#1" object="FEATURE#9" stereotype="STEREOTYPE#1"/>
  </links>
  <measures>
    <measure id="MEASURE#1" metric="METRIC#9" target="P" value="1"/>
  </measures>
</project>`,
			validate: func(t *testing.T, aProject *project.Project) {
				assert.Equal(t, "Legacy", aProject.Name())
				assert.Len(t, aProject.Types(), 51)
				assert.Len(t, aProject.AllTags(), 8)
				assert.Len(t, aProject.Links(), 1)
				assert.Empty(t, aProject.Measures())
				element, ok := aProject.Element("FEATURE#1")
				require.True(t, ok)
				feature := element.(*diagram.Feature)
				assert.Equal(t, 1, feature.X)
				assert.Equal(t, 0, feature.Y)
				assert.True(t, feature.Mandatory)
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			aProject, err := project.FromNode(mustParse(t, testCase.input))
			if testCase.expectErr != nil {
				assert.ErrorIs(t, err, testCase.expectErr)
				return
			}
			require.NoError(t, err)
			testCase.validate(t, aProject)
		})
	}
}

func TestProject_ExportInvalidEncoding(t *testing.T) {
	aProject := project.New(project.WithID("P"), project.WithName("bad\xffname"))
	exported := aProject.Export()
	assert.Contains(t, exported, "bad\xffname")
}

func TestProject_Summary(t *testing.T) {
	f := newFixture(t)
	populate(t, f)
	summary := f.project.Summary()
	assert.Equal(t, "Shop", summary.Name)
	assert.Equal(t, 2, summary.UserTypes) // Money and the Customer entity
	assert.Len(t, summary.Diagrams, 2)
	assert.Equal(t, 1, summary.Diagrams[0].Variabilities)

	encoded, err := summary.YAML()
	require.NoError(t, err)
	text := string(encoded)
	assert.Contains(t, text, "name: Shop")
	assert.Contains(t, text, "kind: Feature")
	assert.Contains(t, text, "measures: 1")
}

func TestProject_BasicElementsRoundTrip(t *testing.T) {
	aProject := project.New(project.WithID("P1"))
	useCases := diagram.New(diagram.KindUseCase, "Use")
	_, err := aProject.AddDiagram(useCases)
	require.NoError(t, err)
	var ids []string
	for _, kind := range diagram.BasicTypes() {
		basic := diagram.NewBasic(kind, "A "+kind)
		basic.Text = kind + " text"
		id, err := aProject.AddElement(useCases.ID(), basic)
		require.NoError(t, err, kind)
		assert.Equal(t, strings.ToUpper(kind)+"#1", id)
		ids = append(ids, id)
	}
	exported := aProject.Export()

	loaded, err := project.Load(strings.NewReader(exported))
	require.NoError(t, err)
	assert.Equal(t, exported, loaded.Export())
	for i, kind := range diagram.BasicTypes() {
		element, ok := loaded.Element(ids[i])
		require.True(t, ok, kind)
		assert.Equal(t, kind, element.Type())
		assert.Equal(t, "A "+kind, element.Name())
	}
}

func TestProject_UnsupportedKinds(t *testing.T) {
	testCases := []struct {
		description string
		add         func(p *project.Project, diagramID string) (string, error)
	}{
		{
			description: "unknown diagram kind",
			add: func(p *project.Project, _ string) (string, error) {
				return p.AddDiagram(diagram.New(diagram.Kind("Timeline"), "T"))
			},
		},
		{
			description: "empty diagram kind",
			add: func(p *project.Project, _ string) (string, error) {
				return p.AddDiagram(diagram.New(diagram.ParseKind("timeline"), "T"))
			},
		},
		{
			description: "unknown basic kind",
			add: func(p *project.Project, diagramID string) (string, error) {
				return p.AddElement(diagramID, diagram.NewBasic("boundary", "B"))
			},
		},
		{
			description: "empty basic kind",
			add: func(p *project.Project, diagramID string) (string, error) {
				return p.AddElement(diagramID, diagram.NewBasic("", "B"))
			},
		},
	}
	for _, testCase := range testCases {
		aProject := project.New(project.WithID("P1"))
		useCases := diagram.New(diagram.KindUseCase, "Use")
		_, err := aProject.AddDiagram(useCases)
		require.NoError(t, err)
		before := aProject.Export()

		id, err := testCase.add(aProject, useCases.ID())
		assert.ErrorIs(t, err, project.ErrUnsupportedKind, testCase.description)
		assert.Empty(t, id, testCase.description)
		assert.Equal(t, before, aProject.Export(), testCase.description)
		assert.Equal(t, "DIAGRAM#2", aProject.NextID(project.DiagramPrefix), testCase.description)
	}
}
