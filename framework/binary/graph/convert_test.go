// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package graph_test

import (
	"container/list"
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tuyennv216/BinaryContainer2-sub001/core/assert"
	stream "github.com/tuyennv216/BinaryContainer2-sub001/core/data/binary"
	"github.com/tuyennv216/BinaryContainer2-sub001/core/log"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary/cyclic"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary/graph"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary/registry"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary/schema"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary/test"
)

func TestNestedRoundTrip(t *testing.T) {
	assert := assert.To(t)
	for _, e := range test.Nested() {
		data, err := graph.ConvertValue(reflect.ValueOf(e.Value))
		if !assert.For("%s convert", e.Name).ThatError(err).Succeeded() {
			continue
		}
		got, err := graph.ConvertBackValue(data, reflect.TypeOf(e.Value))
		if !assert.For("%s convert back", e.Name).ThatError(err).Succeeded() {
			continue
		}
		assert.For(e.Name).That(got.Interface()).DeepEquals(e.Value)
	}
}

func TestLayout(t *testing.T) {
	data, err := graph.Convert(int32(5))
	assert.For(t, "int32").ThatError(err).Succeeded()
	test.VerifyData(t, "int32", []byte{
		13, 0, 0, 0, // total
		0x04,       // arrays
		4, 0, 0, 0, // arrays length
		5, 0, 0, 0,
	}, data)

	data, err = graph.Convert("hi")
	assert.For(t, "string").ThatError(err).Succeeded()
	test.VerifyData(t, "string", []byte{
		22, 0, 0, 0, // total
		0x07,       // flags, items, arrays
		6, 0, 0, 0, // flags length
		1, 0x01, // one bit: small length
		2, 0, 0, 0, 'h', 'i',
		1, 0, 0, 0, 2,
	}, data)

	data, err = graph.Convert[*test.Node](nil)
	assert.For(t, "nil").ThatError(err).Succeeded()
	test.VerifyData(t, "nil", []byte{5, 0, 0, 0, 0x10}, data)
}

func TestNullRoot(t *testing.T) {
	assert := assert.To(t)
	for _, v := range []interface{}{(*int)(nil), []int(nil), map[string]int(nil), (*list.List)(nil)} {
		data, err := graph.ConvertValue(reflect.ValueOf(v))
		assert.For("%T convert", v).ThatError(err).Succeeded()
		got, err := graph.ConvertBackValue(data, reflect.TypeOf(v))
		assert.For("%T convert back", v).ThatError(err).Succeeded()
		assert.For("%T", v).That(got.Interface()).IsNil()
	}
	data, err := graph.Convert[interface{}](nil)
	assert.For("any").ThatError(err).Succeeded()
	got, err := graph.ConvertBack[interface{}](data)
	assert.For("any back").ThatError(err).Succeeded()
	assert.For("any value").That(got).IsNil()

	_, err = graph.ConvertBack[int](data)
	assert.For("not nullable").ThatError(err).Is(binary.ErrMalformedStream)
}

func TestNullAtEveryDepth(t *testing.T) {
	assert := assert.To(t)
	node := &test.Node{Name: "root", Peers: []*test.Node{nil, {Name: "leaf"}, nil}}
	got, err := graph.Clone(node)
	assert.For("clone").Critical().ThatError(err).Succeeded()
	assert.For("next").That(got.Next).IsNil()
	assert.For("peer 0").That(got.Peers[0]).IsNil()
	assert.For("peer 1").That(got.Peers[1].Name).Equals("leaf")
	assert.For("peer 2").That(got.Peers[2]).IsNil()
	assert.For("attrs").That(got.Attrs).IsNil()

	values := map[string]*test.Node{"none": nil, "some": {Name: "x"}}
	back, err := graph.Clone(values)
	assert.For("map clone").Critical().ThatError(err).Succeeded()
	none, found := back["none"]
	assert.For("none found").ThatBoolean(found).IsTrue()
	assert.For("none").That(none).IsNil()
	assert.For("some").That(back["some"].Name).Equals("x")

	nested := [][]*int{nil, {nil}}
	deep, err := graph.Clone(nested)
	assert.For("nested clone").ThatError(err).Succeeded()
	assert.For("nested").That(deep).DeepEquals(nested)
}

func TestTwoNodeCycle(t *testing.T) {
	assert := assert.To(t)
	a := &test.Node{Name: "A"}
	b := &test.Node{Name: "B", Next: a}
	a.Next = b
	data, err := graph.Convert(a)
	assert.For("convert").Critical().ThatError(err).Succeeded()
	got, err := graph.ConvertBack[*test.Node](data)
	assert.For("convert back").Critical().ThatError(err).Succeeded()
	assert.For("a").That(got.Name).Equals("A")
	assert.For("b").That(got.Next.Name).Equals("B")
	assert.For("cycle").That(got.Next.Next).IsSameAs(got)
	assert.For("fresh").That(got).IsNotSameAs(a)

	c, _, err := stream.Import(data, 0)
	assert.For("import").ThatError(err).Succeeded()
	assert.For("pool marker").ThatBoolean(c.UsingReferencePool()).IsTrue()
}

func TestSelfCycle(t *testing.T) {
	assert := assert.To(t)
	self := &test.Node{Name: "self"}
	self.Next = self
	self.Peers = []*test.Node{self, self}
	got, err := graph.Clone(self)
	assert.For("clone").Critical().ThatError(err).Succeeded()
	assert.For("next").That(got.Next).IsSameAs(got)
	assert.For("peer 0").That(got.Peers[0]).IsSameAs(got)
	assert.For("peer 1").That(got.Peers[1]).IsSameAs(got)

	ring := test.Ring(5)
	back, err := graph.Clone(ring[0])
	assert.For("ring").Critical().ThatError(err).Succeeded()
	n := back
	for i := 0; i < 5; i++ {
		assert.For("ring name %d", i).That(n.Name).Equals(ring[i].Name)
		n = n.Next
	}
	assert.For("ring closed").That(n).IsSameAs(back)
}

func TestSharedInstances(t *testing.T) {
	assert := assert.To(t)
	shared := &test.Node{Name: "S"}
	distinct := &test.Node{Name: "S"}
	got, err := graph.Clone([]*test.Node{shared, shared, distinct})
	assert.For("clone").Critical().ThatError(err).Succeeded()
	assert.For("shared").That(got[1]).IsSameAs(got[0])
	assert.For("distinct").That(got[2]).IsNotSameAs(got[0])
	assert.For("equal").That(got[2]).DeepEquals(got[0])

	type maps struct{ A, B map[string]int }
	m := map[string]int{"x": 1}
	pair, err := graph.Clone(maps{m, m})
	assert.For("maps").Critical().ThatError(err).Succeeded()
	pair.A["y"] = 2
	assert.For("map shared").That(pair.B["y"]).Equals(2)
	assert.For("map fresh").That(pair.A).IsNotSameAs(m)
}

func TestSelfReferencingMap(t *testing.T) {
	assert := assert.To(t)
	m := map[string]interface{}{"name": "root"}
	m["self"] = m
	got, err := graph.Clone(m)
	assert.For("clone").Critical().ThatError(err).Succeeded()
	assert.For("name").That(got["name"]).Equals("root")
	self, ok := got["self"].(map[string]interface{})
	assert.For("self type").Critical().ThatBoolean(ok).IsTrue()
	assert.For("self").That(self).IsSameAs(got)
}

func TestSelfReferencingSlice(t *testing.T) {
	assert := assert.To(t)
	v := []interface{}{"head", nil}
	v[1] = v
	got, err := graph.Clone(v)
	assert.For("clone").Critical().ThatError(err).Succeeded()
	assert.For("head").That(got[0]).Equals("head")
	self, ok := got[1].([]interface{})
	assert.For("self type").Critical().ThatBoolean(ok).IsTrue()
	assert.For("self").That(self).IsSameAs(got)

	type holder struct{ Items []interface{} }
	h := &holder{Items: []interface{}{nil}}
	h.Items[0] = h.Items
	back, err := graph.Clone(h)
	assert.For("through field").Critical().ThatError(err).Succeeded()
	assert.For("field self").That(back.Items[0]).IsSameAs(back.Items)
}

func TestIdentityThroughInterfaces(t *testing.T) {
	assert := assert.To(t)
	r := registry.New()
	assert.For("name node").ThatError(r.Name("test.Node", reflect.TypeOf(&test.Node{}))).Succeeded()
	assert.For("name list").ThatError(r.Name("list.List", reflect.TypeOf(list.New()))).Succeeded()

	a := &test.Node{Name: "A"}
	a.Attrs = map[string]interface{}{"me": a, "peer": &test.Node{Name: "B", Next: a}}
	got, err := graph.Clone(a, graph.WithRegistry(r))
	assert.For("clone").Critical().ThatError(err).Succeeded()
	assert.For("me").That(got.Attrs["me"]).IsSameAs(got)
	assert.For("peer next").That(got.Attrs["peer"].(*test.Node).Next).IsSameAs(got)

	l := list.New()
	l.PushBack(l)
	l.PushBack(a)
	l.PushBack(a)
	back, err := graph.Clone(l, graph.WithRegistry(r))
	assert.For("list").Critical().ThatError(err).Succeeded()
	assert.For("list self").That(back.Front().Value).IsSameAs(back)
	second, third := back.Front().Next().Value, back.Back().Value
	assert.For("list shared").That(second).IsSameAs(third)
	assert.For("list node").That(second.(*test.Node).Attrs["me"]).IsSameAs(second)

	_, err = graph.Clone(a)
	assert.For("global registry has no names").ThatError(err).Is(binary.ErrUnknownName)
}

func TestCrossConversionIdentity(t *testing.T) {
	assert := assert.To(t)
	src := &test.Node{Name: "A"}
	first, err := graph.Clone(src)
	assert.For("first").ThatError(err).Succeeded()
	second, err := graph.Clone(src)
	assert.For("second").ThatError(err).Succeeded()
	assert.For("equal").That(first).DeepEquals(second)
	assert.For("not shared").That(first).IsNotSameAs(second)
	assert.For("not source").That(first).IsNotSameAs(src)

	data, err := graph.Convert(src)
	assert.For("convert").ThatError(err).Succeeded()
	x, _ := graph.ConvertBack[*test.Node](data)
	y, _ := graph.ConvertBack[*test.Node](data)
	assert.For("same buffer").That(x).IsNotSameAs(y)
}

func TestSharedSlices(t *testing.T) {
	assert := assert.To(t)
	type views struct{ A, B, Head []int }
	backing := []int{1, 2, 3}
	got, err := graph.Clone(views{backing, backing, backing[:2]})
	assert.For("clone").Critical().ThatError(err).Succeeded()
	got.A[0] = 9
	assert.For("shared").That(got.B[0]).Equals(9)
	assert.For("same slice").That(got.B).IsSameAs(got.A)
	assert.For("other bounds independent").That(got.Head[0]).Equals(1)
	assert.For("fresh").That(got.A).IsNotSameAs(backing)
}

func TestMalformed(t *testing.T) {
	assert := assert.To(t)
	data, err := graph.Convert([]string{"a", "b"})
	assert.For("convert").Critical().ThatError(err).Succeeded()

	_, err = graph.ConvertBack[[]string](append(append([]byte{}, data...), 0))
	assert.For("trailing").ThatError(err).Is(binary.ErrMalformedStream)
	for i := 0; i < len(data); i++ {
		_, err = graph.ConvertBack[[]string](data[:i])
		assert.For("truncated at %d", i).ThatError(err).Is(binary.ErrMalformedStream)
	}
	_, err = graph.ConvertBack[[]int](data)
	assert.For("wrong type").ThatError(err).Is(binary.ErrMalformedStream)
	_, err = graph.ConvertBack[string](data)
	assert.For("left over").ThatError(err).Is(binary.ErrMalformedStream)

	for i := range data {
		corrupt := append([]byte{}, data...)
		corrupt[i] ^= 0xff
		graph.ConvertBack[[]string](corrupt)
	}
}

func TestUnsupported(t *testing.T) {
	assert := assert.To(t)
	_, err := graph.Convert(make(chan int))
	assert.For("chan").ThatError(err).Is(binary.ErrUnsupportedType)
	_, err = graph.Convert(struct{ F func() }{})
	assert.For("func field").ThatError(err).Is(binary.ErrUnsupportedType)
	_, err = graph.ConvertValue(reflect.Value{})
	assert.For("invalid").ThatError(err).Is(binary.ErrInvalidArgument)
	_, err = graph.ConvertBackValue(nil, nil)
	assert.For("nil type").ThatError(err).Is(binary.ErrInvalidArgument)
}

type token int

func TestPanicsBecomeErrors(t *testing.T) {
	assert := assert.To(t)
	r := registry.New()
	op := schema.NewFuncs(
		func(*stream.Container, token, *cyclic.Pool) error { panic("write exploded") },
		func(*stream.Container, *cyclic.Pool) (token, error) { panic("read exploded") },
	)
	assert.For("register").ThatError(r.Register(op)).Succeeded()
	_, err := graph.Convert(token(1), graph.WithRegistry(r))
	assert.For("write").ThatError(err).Is(binary.ErrInvalidArgument)
	assert.For("write message").ThatError(err).HasMessage("conversion panicked: write exploded: Invalid argument")
	_, err = graph.ConvertBack[token]([]byte{5, 0, 0, 0, 0}, graph.WithRegistry(r))
	assert.For("read").ThatError(err).Is(binary.ErrInvalidArgument)
}

func TestLogging(t *testing.T) {
	assert := assert.To(t)
	core, logs := observer.New(zapcore.DebugLevel)
	data, err := graph.Convert(test.Ring(3)[0], graph.WithLogger(zap.New(core)))
	assert.For("convert").ThatError(err).Succeeded()
	_, err = graph.ConvertBack[*test.Node](data, graph.WithLogger(zap.New(core)))
	assert.For("convert back").ThatError(err).Succeeded()

	entries := logs.All()
	assert.For("entries").ThatInteger(len(entries)).Equals(2)
	fields := entries[0].ContextMap()
	assert.For("message").That(entries[0].Message).Equals("converted")
	assert.For("handles").That(fields["handles"]).Equals(int64(3))
	assert.For("bytes").That(fields["bytes"]).Equals(int64(len(data)))
	assert.For("back").That(entries[1].Message).Equals("converted back")

	log.SetLogger(log.Testing(t))
	defer log.SetLogger(nil)
	_, err = graph.Convert(1)
	assert.For("default logger").ThatError(err).Succeeded()
}
