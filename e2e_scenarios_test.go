package tars_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	tars "github.com/tars-go/tars"
)

// personAddressSchema mirrors a small nested-struct scenario: Person (row 0)
// has an embedded Address (row 4), a list of scores and an optional name.
// Person struct id is tars.TypeMax; Address struct id is tars.TypeMax+4.
func personAddressSchema() *tars.Schema {
	fields := []tars.FieldDescriptor{
		{Tag: 0, Forced: true, Type1: tars.KindI32},                       // 0: Person.id
		{Tag: 1, Type1: tars.KindString},                                  // 1: Person.name
		{Tag: 2, Type1: tars.KindList, Type2: tars.KindI32},               // 2: Person.scores
		{Tag: 3, Type1: tars.TypeMax + 4},                                 // 3: Person.address
		{Tag: 0, Forced: true, Type1: tars.KindString},                    // 4: Address.city
		{Tag: 1, Type1: tars.KindString},                                  // 5: Address.zip
	}
	names := []string{"id", "name", "scores", "address", "city", "zip"}
	s, err := tars.CompileSchema(fields, names, nil)
	Expect(err).NotTo(HaveOccurred())
	return s
}

var _ = Describe("struct encode/decode", func() {
	var schema *tars.Schema

	BeforeEach(func() {
		schema = personAddressSchema()
	})

	It("round-trips a fully populated nested struct", func() {
		address := tars.NewStruct().
			Set("city", tars.String("Springfield")).
			Set("zip", tars.String("00000"))
		person := tars.NewStruct().
			Set("id", tars.Int(42)).
			Set("name", tars.String("Homer")).
			Set("scores", tars.List([]tars.Value{tars.Int(1), tars.Int(2), tars.Int(3)})).
			Set("address", address)

		data, err := tars.EncodeStructTop(schema, tars.TypeMax, person)
		Expect(err).NotTo(HaveOccurred())

		out, err := tars.DecodeStructTop(schema, tars.TypeMax, data)
		Expect(err).NotTo(HaveOccurred())

		id, _ := out.Field("id").AsInt()
		Expect(id).To(Equal(int64(42)))
		name, _ := out.Field("name").AsString()
		Expect(name).To(Equal("Homer"))

		city, _ := out.Field("address").Field("city").AsString()
		Expect(city).To(Equal("Springfield"))

		scores, _ := out.Field("scores").AsList()
		Expect(scores).To(HaveLen(3))
	})

	It("defaults every optional field when only the forced id is supplied", func() {
		person := tars.NewStruct().Set("id", tars.Int(7))

		data, err := tars.EncodeStructTop(schema, tars.TypeMax, person)
		Expect(err).NotTo(HaveOccurred())

		out, err := tars.DecodeStructTop(schema, tars.TypeMax, data)
		Expect(err).NotTo(HaveOccurred())

		name, _ := out.Field("name").AsString()
		Expect(name).To(Equal(""))
		scores, ok := out.Field("scores").AsList()
		Expect(ok).To(BeTrue())
		Expect(scores).To(BeEmpty())
	})

	It("rejects a wire stream whose tags are not monotonically increasing", func() {
		buf := &tars.Buffer{}
		buf.WriteString(1, "x") // name's tag, written before the id's own tag
		buf.WriteInt64(0, 1)

		_, err := tars.DecodeStructTop(schema, tars.TypeMax, buf.Bytes)
		Expect(err).To(MatchError(tars.ErrDisorderedField))
	})

	It("skips unknown trailing fields written by a newer schema version", func() {
		buf := &tars.Buffer{}
		buf.WriteInt64(0, 1)                   // id
		buf.WriteInt64(9, 123)                 // a field tag 9 doesn't know about
		buf.WriteHeader(0, tars.WireStructEnd) // explicit end, as a nested struct would carry

		out, err := tars.DecodeStructTop(schema, tars.TypeMax, buf.Bytes)
		Expect(err).NotTo(HaveOccurred())
		id, _ := out.Field("id").AsInt()
		Expect(id).To(Equal(int64(1)))
	})
})

var _ = Describe("list encode/decode", func() {
	It("round-trips an empty list when forced", func() {
		schema := personAddressSchema()
		data, err := tars.EncodeListTop(schema, tars.KindI32, tars.List(nil))
		Expect(err).NotTo(HaveOccurred())

		out, err := tars.DecodeListTop(schema, tars.KindI32, data)
		Expect(err).NotTo(HaveOccurred())
		items, ok := out.AsList()
		Expect(ok).To(BeTrue())
		Expect(items).To(BeEmpty())
	})

	It("round-trips a list of structs", func() {
		schema := personAddressSchema()
		a1 := tars.NewStruct().Set("city", tars.String("Ogdenville")).Set("zip", tars.String("1"))
		a2 := tars.NewStruct().Set("city", tars.String("Shelbyville")).Set("zip", tars.String("2"))

		data, err := tars.EncodeListTop(schema, tars.TypeMax+4, tars.List([]tars.Value{a1, a2}))
		Expect(err).NotTo(HaveOccurred())

		out, err := tars.DecodeListTop(schema, tars.TypeMax+4, data)
		Expect(err).NotTo(HaveOccurred())
		items, _ := out.AsList()
		Expect(items).To(HaveLen(2))
		city0, _ := items[0].Field("city").AsString()
		Expect(city0).To(Equal("Ogdenville"))
	})
})

var _ = Describe("map encode/decode", func() {
	It("round-trips a map keyed by string with struct values", func() {
		schema := personAddressSchema()
		homes := tars.Map([]tars.MapEntry{
			{Key: tars.String("homer"), Value: tars.NewStruct().Set("city", tars.String("Springfield"))},
		})

		data, err := tars.EncodeMapTop(schema, tars.KindString, tars.TypeMax+4, homes)
		Expect(err).NotTo(HaveOccurred())

		out, err := tars.DecodeMapTop(schema, tars.KindString, tars.TypeMax+4, data)
		Expect(err).NotTo(HaveOccurred())
		entries, _ := out.AsMap()
		Expect(entries).To(HaveLen(1))
		city, _ := entries[0].Value.Field("city").AsString()
		Expect(city).To(Equal("Springfield"))
	})
})
