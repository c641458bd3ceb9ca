package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *Object {
	t.Helper()
	v, err := FromJSON([]byte(src))
	require.NoError(t, err)
	require.Equal(t, KindObject, v.Kind())
	return v.ObjectVal()
}

func fieldKeys(fields []Field) []string {
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
	}
	return keys
}

func TestCompareIdentical(t *testing.T) {
	doc := mustParse(t, `{"name":"GDSC","description":"coding club","execs":[{"name":"a","position":"president"}]}`)
	assert.Empty(t, Compare(doc, doc))
	assert.Empty(t, Compare(doc.Clone(), doc))
}

func TestCompareScalars(t *testing.T) {
	oldDoc := mustParse(t, `{"name":"Chess Club","location":"F102","noEnd":false}`)
	newDoc := mustParse(t, `{"name":"Chess Society","location":"F102","noEnd":true}`)

	fields := Compare(oldDoc, newDoc)
	require.Len(t, fields, 2)

	assert.Equal(t, "name", fields[0].Key)
	assert.Equal(t, String("Chess Club"), fields[0].OldValue)
	assert.Equal(t, String("Chess Society"), fields[0].NewValue)

	assert.Equal(t, "noEnd", fields[1].Key)
	assert.Equal(t, Bool(false), fields[1].OldValue)
	assert.Equal(t, Bool(true), fields[1].NewValue)
}

func TestCompareNullVsEmptyString(t *testing.T) {
	// null, "" and false are distinct kinds and must produce a field
	oldDoc := mustParse(t, `{"description":null}`)
	newDoc := mustParse(t, `{"description":""}`)

	fields := Compare(oldDoc, newDoc)
	require.Len(t, fields, 1)
	assert.Equal(t, Null(), fields[0].OldValue)
	assert.Equal(t, String(""), fields[0].NewValue)
}

func TestCompareNestedObject(t *testing.T) {
	oldDoc := mustParse(t, `{"filters":{"limited":false,"weekly":true}}`)
	newDoc := mustParse(t, `{"filters":{"limited":true,"weekly":true}}`)

	fields := Compare(oldDoc, newDoc)
	require.Len(t, fields, 1)
	assert.Equal(t, "filters.limited", fields[0].Key)
	assert.Equal(t, Bool(false), fields[0].OldValue)
	assert.Equal(t, Bool(true), fields[0].NewValue)
}

func TestCompareMissingOldKey(t *testing.T) {
	// a key absent from the old version compares against null
	oldDoc := mustParse(t, `{"name":"x"}`)
	newDoc := mustParse(t, `{"name":"x","location":"library"}`)

	fields := Compare(oldDoc, newDoc)
	require.Len(t, fields, 1)
	assert.Equal(t, "location", fields[0].Key)
	assert.Equal(t, Null(), fields[0].OldValue)
}

func TestFilteredKeys(t *testing.T) {
	oldDoc := mustParse(t, `{"id":"a","eventId":"b","repeatingId":"c","history":["h1"],"repeatEnd":1,"name":"x"}`)
	newDoc := mustParse(t, `{"id":"z","eventId":"y","repeatingId":"w","history":["h2"],"repeatEnd":2,"name":"y"}`)

	fields := Compare(oldDoc, newDoc)
	require.Len(t, fields, 1)
	assert.Equal(t, "name", fields[0].Key)

	created := Creation(newDoc)
	assert.Equal(t, []string{"name"}, fieldKeys(created))
}

func TestFilteredKeysNested(t *testing.T) {
	oldDoc := mustParse(t, `{"execs":[{"name":"a","UID":"1"}]}`)
	newDoc := mustParse(t, `{"execs":[{"name":"b","UID":"2"}]}`)

	fields := Compare(oldDoc, newDoc)
	require.Len(t, fields, 1)
	assert.Equal(t, "execs[0].name", fields[0].Key)
}

func TestCreationOrder(t *testing.T) {
	doc := mustParse(t, `{"name":"HackTAMS","club":"CSO","description":"","start":5}`)
	fields := Creation(doc)
	assert.Equal(t, []string{"name", "club", "description", "start"}, fieldKeys(fields))
	for _, f := range fields {
		assert.Equal(t, Null(), f.OldValue)
	}
}

func TestCompareArrayShrink(t *testing.T) {
	oldArr := []Value{Number(1), Number(2), Number(3)}
	newArr := []Value{Number(1), Number(2)}

	fields := CompareArray(oldArr, newArr, "")
	require.Len(t, fields, 1)
	assert.Equal(t, "[2]", fields[0].Key)
	assert.Equal(t, Number(3), fields[0].OldValue)
	assert.Equal(t, String(Deleted), fields[0].NewValue)
}

func TestCompareArrayGrow(t *testing.T) {
	oldArr := []Value{Number(1)}
	newArr := []Value{Number(1), Number(2)}

	fields := CompareArray(oldArr, newArr, "")
	require.Len(t, fields, 1)
	assert.Equal(t, "[1]", fields[0].Key)
	assert.Equal(t, Null(), fields[0].OldValue)
	assert.Equal(t, Number(2), fields[0].NewValue)
}

func TestCompareArrayNestedObjects(t *testing.T) {
	oldDoc := mustParse(t, `{"execs":[{"name":"a","position":"president"},{"name":"b","position":"treasurer"}]}`)
	newDoc := mustParse(t, `{"execs":[{"name":"a","position":"president"},{"name":"b","position":"secretary"}]}`)

	fields := Compare(oldDoc, newDoc)
	require.Len(t, fields, 1)
	assert.Equal(t, "execs[1].position", fields[0].Key)
}

func TestCompareArrayNestedArrays(t *testing.T) {
	oldArr := []Value{Array([]Value{String("a"), String("b")})}
	newArr := []Value{Array([]Value{String("a"), String("c")})}

	fields := CompareArray(oldArr, newArr, "links")
	require.Len(t, fields, 1)
	assert.Equal(t, "links[0][1]", fields[0].Key)
}

func TestCompareArrayReorderIsRewrite(t *testing.T) {
	// index position is the only correlation key: a swap diffs both slots
	oldArr := []Value{String("a"), String("b")}
	newArr := []Value{String("b"), String("a")}

	fields := CompareArray(oldArr, newArr, "")
	assert.Equal(t, []string{"[0]", "[1]"}, fieldKeys(fields))
}

func TestApply(t *testing.T) {
	doc := mustParse(t, `{"name":"x","execs":[{"name":"a"},{"name":"b"}],"filters":{"open":true}}`)

	require.NoError(t, Apply(doc, "name", String("y")))
	require.NoError(t, Apply(doc, "execs[1].name", String("c")))
	require.NoError(t, Apply(doc, "filters.open", Bool(false)))
	require.NoError(t, Apply(doc, "execs[2]", ObjectValue(NewObject())))

	want := mustParse(t, `{"name":"y","execs":[{"name":"a"},{"name":"c"},{}],"filters":{"open":false}}`)
	assert.True(t, Equal(ObjectValue(doc), ObjectValue(want)))
}

func TestApplyBadPath(t *testing.T) {
	doc := mustParse(t, `{"a":[1]}`)
	assert.Error(t, Apply(doc, "a[5]", Null()))
	assert.Error(t, Apply(doc, "", Null()))
	assert.Error(t, Apply(doc, "a[x]", Null()))
}

func TestValueJSONRoundTrip(t *testing.T) {
	src := `{"z":1,"a":[true,null,"s",{"k":2.5}],"m":{"b":""}}`
	v, err := FromJSON([]byte(src))
	require.NoError(t, err)

	out, err := v.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, src, string(out))

	// key order survives the round trip
	assert.Equal(t, []string{"z", "a", "m"}, v.ObjectVal().Keys())
}

func TestFromStruct(t *testing.T) {
	type filters struct {
		Limited bool `json:"limited"`
		Weekly  bool `json:"weekly"`
	}
	type vol struct {
		ID      string  `json:"id"`
		Name    string  `json:"name"`
		Filters filters `json:"filters"`
	}

	v, err := FromStruct(vol{ID: "v1", Name: "food bank", Filters: filters{Weekly: true}})
	require.NoError(t, err)
	require.Equal(t, KindObject, v.Kind())

	name, ok := v.ObjectVal().Get("name")
	require.True(t, ok)
	assert.Equal(t, String("food bank"), name)
}
