package codegen_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/smarty/model/codegen"
	"github.com/viant/smarty/model/diagram"
	"github.com/viant/smarty/model/project"
)

type model struct {
	project  *project.Project
	classes  *diagram.Diagram
	customer *diagram.Entity
	named    *diagram.Entity
	total    *diagram.Attribute
	find     *diagram.Method
}

func newModel(t *testing.T) *model {
	t.Helper()
	ret := &model{project: project.New(project.WithID("P"))}
	ret.classes = diagram.New(diagram.KindClass, "Domain")
	ret.project.AddDiagram(ret.classes)
	add := func(element diagram.Element) {
		_, err := ret.project.AddElement(ret.classes.ID(), element)
		require.NoError(t, err)
	}
	ret.named = diagram.NewInterface("Named", "com.shop.api")
	add(ret.named)
	add(diagram.NewMethod(ret.named.ID(), "label", ret.project.TypeByName("String").ID))

	ret.customer = diagram.NewClass("Customer", "com.shop")
	add(ret.customer)
	ret.total = diagram.NewAttribute(ret.customer.ID(), "total", "TYPE#4")
	add(ret.total)
	orders := diagram.NewAttribute(ret.customer.ID(), "orders", ret.project.TypeByName("List").ID)
	orders.Final = true
	add(orders)
	constructor := diagram.NewMethod(ret.customer.ID(), "Customer", "")
	constructor.Constructor = true
	add(constructor)
	ret.find = diagram.NewMethod(ret.customer.ID(), "find", ret.customer.ID())
	ret.find.AddParameter(&diagram.Parameter{Name: "id", TypeID: "TYPE#6"})
	ret.find.AddParameter(&diagram.Parameter{Name: "other", TypeID: ret.named.ID()})
	add(ret.find)
	count := diagram.NewMethod(ret.customer.ID(), "count", "TYPE#7")
	count.Static = true
	add(count)
	add(diagram.NewMethod(ret.customer.ID(), "label", ret.project.TypeByName("String").ID))

	_, err := ret.project.AddAssociation(ret.classes.ID(), diagram.NewAssociation(diagram.CategoryRealization, ret.customer.ID(), ret.named.ID()))
	require.NoError(t, err)
	return ret
}

func TestJava_Emit(t *testing.T) {
	m := newModel(t)
	emitter := codegen.NewJava(m.project)
	var _ codegen.Emitter = emitter

	content, err := emitter.Emit(m.customer)
	require.NoError(t, err)
	expect := `package com.shop;

import com.shop.api.Named;
import java.util.List;

public class Customer implements Named {

    private double total;

    private final List orders;

    public Customer() {
    }

    public Customer find(int id, Named other) {
        return null;
    }

    public static long count() {
        return 0L;
    }

    public String label() {
        return null;
    }
}
`
	assert.Equal(t, expect, string(content))
	assert.NoError(t, codegen.Validate(context.Background(), content))

	content, err = emitter.Emit(m.named)
	require.NoError(t, err)
	assert.Equal(t, "package com.shop.api;\n\npublic interface Named {\n\n    String label();\n}\n", string(content))
	assert.NoError(t, codegen.Validate(context.Background(), content))

	_, err = emitter.Emit(diagram.NewClass("", ""))
	assert.Error(t, err)
}

func TestJava_Fragment(t *testing.T) {
	m := newModel(t)
	emitter := codegen.NewJava(m.project)
	testCases := []struct {
		description string
		element     diagram.Element
		expect      string
	}{
		{description: "attribute", element: m.total, expect: "private double total;"},
		{description: "method", element: m.find, expect: "public Customer find(int id, Named other) {\n    return null;\n}"},
		{description: "entity", element: m.customer, expect: "public class Customer implements Named {\n}"},
		{description: "element without code", element: diagram.NewBasic("actor", "Clerk"), expect: ""},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			assert.Equal(t, testCase.expect, emitter.Fragment(testCase.element))
		})
	}
}

func TestJava_Files(t *testing.T) {
	m := newModel(t)
	files, err := codegen.NewJava(m.project).Files(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "com/shop/api/Named.java", files[0].Path)
	assert.Equal(t, "com/shop/Customer.java", files[1].Path)
	assert.Equal(t, "Plain.java", codegen.FilePath(diagram.NewClass("Plain", "")))
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		description string
		source      string
		expectErr   bool
	}{
		{description: "valid class", source: "class A { int a; }"},
		{description: "missing brace", source: "class A { int a; ", expectErr: true},
		{description: "garbage", source: "class { ) int", expectErr: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			err := codegen.Validate(context.Background(), []byte(testCase.source))
			if testCase.expectErr {
				assert.ErrorIs(t, err, codegen.ErrInvalidSource)
				return
			}
			assert.NoError(t, err)
		})
	}
}
