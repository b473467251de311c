package project_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/smarty/model/diagram"
	"github.com/viant/smarty/model/project"
)

func TestProject_RemoveType(t *testing.T) {
	aProject := project.New()
	classes := diagram.New(diagram.KindClass, "Domain")
	aProject.AddDiagram(classes)

	orderID := aProject.AddType(project.NewType("", "Order"))
	assert.Equal(t, "TYPE#52", orderID)
	customer := diagram.NewClass("Customer", "")
	_, err := aProject.AddElement(classes.ID(), customer)
	require.NoError(t, err)
	attribute := diagram.NewAttribute(customer.ID(), "order", orderID)
	_, err = aProject.AddElement(classes.ID(), attribute)
	require.NoError(t, err)

	require.True(t, aProject.RemoveType(attribute.TypeID))
	assert.Equal(t, "TYPE#21", attribute.TypeID)
	for _, aType := range aProject.Types() {
		assert.NotEqual(t, "Order", aType.Name)
	}
	assert.False(t, aProject.Contains(orderID))
	assert.False(t, aProject.RemoveType(orderID))
	assert.False(t, aProject.RemoveType("TYPE#21"))
	assert.False(t, aProject.RemoveType("TYPE#1"))
}

func TestProject_RemoveEntityType(t *testing.T) {
	aProject := project.New()
	domain := diagram.New(diagram.KindClass, "Domain")
	services := diagram.New(diagram.KindClass, "Services")
	aProject.AddDiagram(domain)
	aProject.AddDiagram(services)

	order := diagram.NewClass("Order", "com.shop")
	_, err := aProject.AddElement(domain.ID(), order)
	require.NoError(t, err)
	service := diagram.NewInterface("OrderService", "com.shop")
	_, err = aProject.AddElement(services.ID(), service)
	require.NoError(t, err)
	method := diagram.NewMethod(service.ID(), "place", order.ID())
	method.AddParameter(&diagram.Parameter{Name: "order", TypeID: order.ID()})
	_, err = aProject.AddElement(services.ID(), method)
	require.NoError(t, err)

	require.True(t, aProject.RemoveEntityType(order))
	assert.Equal(t, "TYPE#21", method.ReturnID)
	assert.Equal(t, "TYPE#21", method.Parameters[0].TypeID)
	assert.NotContains(t, aProject.ReferencedTypes(), order.ID())
	_, ok := aProject.EntityType(order)
	assert.False(t, ok)
	// the entity itself stays in the namespace
	assert.True(t, aProject.Contains(order.ID()))
}

func TestProject_TypeLookup(t *testing.T) {
	aProject := project.New()
	money := project.NewType("com.shop", "Money")
	aProject.AddType(money)

	testCases := []struct {
		description string
		lookup      func() *project.Type
		expectID    string
	}{
		{description: "primitive by name", lookup: func() *project.Type { return aProject.TypeByName("int") }, expectID: "TYPE#6"},
		{description: "case insensitive name", lookup: func() *project.Type { return aProject.TypeByName("STRING") }, expectID: "TYPE#24"},
		{description: "unknown name falls back to root", lookup: func() *project.Type { return aProject.TypeByName("Unknown") }, expectID: "TYPE#21"},
		{description: "standard signature", lookup: func() *project.Type { return aProject.TypeBySignature("java.util.List") }, expectID: "TYPE#41"},
		{description: "user signature", lookup: func() *project.Type { return aProject.TypeBySignature("com.shop.Money") }, expectID: money.ID},
		{description: "primitive has no signature", lookup: func() *project.Type { return aProject.TypeBySignature("") }, expectID: "TYPE#21"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual := testCase.lookup()
			require.NotNil(t, actual)
			assert.Equal(t, testCase.expectID, actual.ID)
		})
	}
}

func TestProject_DefaultTypesReload(t *testing.T) {
	aProject, err := project.FromNode(mustParse(t, `<project id="P" name="n" version="1"><types></types></project>`))
	require.NoError(t, err)
	// an empty catalog is bootstrapped on load
	assert.Equal(t, "TYPE#21", aProject.ObjectType().ID)
	assert.Equal(t, "void", aProject.VoidType().Name)
}

func TestProject_EntityTypeFollowsEntity(t *testing.T) {
	aProject := project.New()
	classes := diagram.New(diagram.KindClass, "Domain")
	_, err := aProject.AddDiagram(classes)
	require.NoError(t, err)
	customer := diagram.NewClass("Customer", "com.shop")
	_, err = aProject.AddElement(classes.ID(), customer)
	require.NoError(t, err)

	customer.SetName("Client")
	customer.Path = "com.store"

	aType, ok := aProject.Type(customer.ID())
	require.True(t, ok)
	assert.Equal(t, "Client", aType.Name)
	assert.Equal(t, "com.store", aType.Path)
	assert.Equal(t, customer.ID(), aProject.TypeByName("client").ID)
	assert.Equal(t, customer.ID(), aProject.TypeBySignature("com.store.Client").ID)
	assert.Equal(t, "TYPE#21", aProject.TypeBySignature("com.shop.Customer").ID)

	loaded, err := project.Load(strings.NewReader(aProject.Export()))
	require.NoError(t, err)
	loadedType, ok := loaded.Type(customer.ID())
	require.True(t, ok)
	assert.Equal(t, "Client", loadedType.Name)
}
