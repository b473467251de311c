package reverse_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/smarty/model/codegen"
	"github.com/viant/smarty/model/diagram"
	"github.com/viant/smarty/model/project"
	"github.com/viant/smarty/model/reverse"
)

const shopSource = `package com.shop;

import java.util.List;
import java.util.*;
import com.shop.api.Named;

public abstract class Customer extends Person implements Named, Comparable<Customer> {
    private double total, limit;
    protected List<Order> orders;
    static final int MAX = 10;

    public Customer(String name) {
        this.total = 0;
    }

    public Order find(int id, String... tags) {
        return null;
    }

    abstract void close();
}

interface Order {
    int LIMIT = 1;
    Customer owner();
    default long count() { return 0L; }
}

class Person {
}
`

func TestImporter_Import(t *testing.T) {
	aProject := project.New(project.WithID("P"))
	classes := diagram.New(diagram.KindClass, "Domain")
	aProject.AddDiagram(classes)

	ids, err := reverse.New(aProject).Import(context.Background(), classes.ID(), []byte(shopSource))
	require.NoError(t, err)
	assert.Equal(t, []string{"CLASS#1", "INTERFACE#1", "CLASS#2"}, ids)

	customer, ok := aProject.EntityByName("com.shop.Customer")
	require.True(t, ok)
	assert.True(t, customer.Abstract)
	order, ok := aProject.EntityByName("com.shop.Order")
	require.True(t, ok)
	assert.True(t, order.Interface)

	members := aProject.Members(customer.ID())
	var names []string
	for _, member := range members {
		names = append(names, member.Name())
	}
	assert.Equal(t, []string{"total", "limit", "orders", "MAX", "Customer", "find", "close"}, names)

	total := members[0].(*diagram.Attribute)
	assert.Equal(t, "TYPE#4", total.TypeID)
	assert.Equal(t, "private", total.Visibility)
	orders := members[2].(*diagram.Attribute)
	assert.Equal(t, "TYPE#41", orders.TypeID)
	assert.Equal(t, "protected", orders.Visibility)
	maxAttribute := members[3].(*diagram.Attribute)
	assert.True(t, maxAttribute.Static)
	assert.True(t, maxAttribute.Final)

	constructor := members[4].(*diagram.Method)
	assert.True(t, constructor.Constructor)
	require.Len(t, constructor.Parameters, 1)
	assert.Equal(t, "TYPE#24", constructor.Parameters[0].TypeID)

	find := members[5].(*diagram.Method)
	assert.Equal(t, order.ID(), find.ReturnID)
	require.Len(t, find.Parameters, 2)
	assert.Equal(t, "TYPE#6", find.Parameters[0].TypeID)
	assert.Equal(t, "tags", find.Parameters[1].Name)
	closeMethod := members[6].(*diagram.Method)
	assert.True(t, closeMethod.Abstract)
	assert.Equal(t, "TYPE#9", closeMethod.ReturnID)

	orderMembers := aProject.Members(order.ID())
	require.Len(t, orderMembers, 3)
	limit := orderMembers[0].(*diagram.Attribute)
	assert.True(t, limit.Static)
	assert.Equal(t, customer.ID(), orderMembers[1].(*diagram.Method).ReturnID)
	assert.True(t, orderMembers[1].(*diagram.Method).Abstract)
	assert.False(t, orderMembers[2].(*diagram.Method).Abstract)

	// Person is a project entity, Named and Comparable are not
	associations := aProject.AssociationsFor(customer.ID())
	require.Len(t, associations, 1)
	assert.Equal(t, diagram.CategoryGeneralization, associations[0].Category)
	assert.Equal(t, "CLASS#2", associations[0].TargetID)

	// existing entities are kept
	ids, err = reverse.New(aProject).Import(context.Background(), classes.ID(), []byte(shopSource))
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Len(t, aProject.Members(customer.ID()), 7)
}

func TestImporter_GeneratedSource(t *testing.T) {
	source := aProjectWithEntity(t)
	target := project.New(project.WithID("T"))
	classes := diagram.New(diagram.KindClass, "")
	target.AddDiagram(classes)
	ids, err := reverse.New(target).Import(context.Background(), classes.ID(), source)
	require.NoError(t, err)
	require.Len(t, ids, 1)

	entity, ok := target.EntityByName("com.shop.Invoice")
	require.True(t, ok)
	emitted, err := codegen.NewJava(target).Emit(entity)
	require.NoError(t, err)
	assert.Equal(t, string(source), string(emitted))
}

func aProjectWithEntity(t *testing.T) []byte {
	t.Helper()
	aProject := project.New()
	classes := diagram.New(diagram.KindClass, "")
	aProject.AddDiagram(classes)
	invoice := diagram.NewClass("Invoice", "com.shop")
	_, err := aProject.AddElement(classes.ID(), invoice)
	require.NoError(t, err)
	_, err = aProject.AddElement(classes.ID(), diagram.NewAttribute(invoice.ID(), "lines", "TYPE#41"))
	require.NoError(t, err)
	pay := diagram.NewMethod(invoice.ID(), "pay", "TYPE#1")
	pay.AddParameter(&diagram.Parameter{Name: "amount", TypeID: "TYPE#4"})
	_, err = aProject.AddElement(classes.ID(), pay)
	require.NoError(t, err)
	content, err := codegen.NewJava(aProject).Emit(invoice)
	require.NoError(t, err)
	return content
}

func TestImporter_Errors(t *testing.T) {
	aProject := project.New()
	classes := diagram.New(diagram.KindClass, "")
	aProject.AddDiagram(classes)
	features := diagram.New(diagram.KindFeature, "")
	aProject.AddDiagram(features)
	importer := reverse.New(aProject)

	testCases := []struct {
		description string
		diagramID   string
		source      string
		expectErr   error
	}{
		{description: "unknown diagram", diagramID: "DIAGRAM#99", source: "class A {}", expectErr: project.ErrUnknownReference},
		{description: "syntax error", diagramID: classes.ID(), source: "class A {", expectErr: codegen.ErrInvalidSource},
		{description: "feature diagram", diagramID: features.ID(), source: "class A {}"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			_, err := importer.Import(context.Background(), testCase.diagramID, []byte(testCase.source))
			require.Error(t, err)
			if testCase.expectErr != nil {
				assert.ErrorIs(t, err, testCase.expectErr)
			}
		})
	}
	assert.Empty(t, aProject.Elements())
}
