package jsonval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCompact(t *testing.T) {
	v := Object{
		"zebra": NewInt(1),
		"apple": Array{String("x"), Null{}, Bool(true)},
	}

	data, err := Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `{"apple":["x",null,true],"zebra":1}`, string(data))
}

func TestMarshalSortsKeysBytewise(t *testing.T) {
	v := Object{"b": NewInt(2), "a": NewInt(1), "B": NewInt(3)}

	data, err := Marshal(v)
	require.NoError(t, err)
	// 'B' (0x42) sorts before 'a' (0x61)
	assert.Equal(t, `{"B":3,"a":1,"b":2}`, string(data))
}

func TestMarshalStable(t *testing.T) {
	v := Object{"x": Array{NewInt(1)}, "y": Object{"k": String("v")}}

	first, err := Marshal(v)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Marshal(v)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestMarshalNoHTMLEscaping(t *testing.T) {
	data, err := Marshal(String("<a> & </a>"))
	require.NoError(t, err)
	assert.Equal(t, `"<a> & </a>"`, string(data))
}

func TestMarshalRejectsNilValue(t *testing.T) {
	_, err := Marshal(nil)
	assert.Error(t, err)

	_, err = Marshal(Array{nil})
	assert.Error(t, err)
}

func TestUnmarshalRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"null", `null`},
		{"bool", `false`},
		{"string", `"hi"`},
		{"int", `42`},
		{"big int", `9007199254740993`},
		{"float", `0.1`},
		{"array", `[1,"two",null]`},
		{"object", `{"a":[{"b":1}],"c":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Unmarshal([]byte(tt.text))
			require.NoError(t, err)

			out, err := Marshal(v)
			require.NoError(t, err)
			assert.Equal(t, tt.text, string(out))
		})
	}
}

func TestUnmarshalPreservesNumberLiterals(t *testing.T) {
	v, err := Unmarshal([]byte(`{"big":9007199254740993,"frac":0.1}`))
	require.NoError(t, err)

	obj, ok := v.(Object)
	require.True(t, ok)
	assert.Equal(t, Number("9007199254740993"), obj["big"])
	assert.Equal(t, Number("0.1"), obj["frac"])
}

func TestUnmarshalRejectsTrailingData(t *testing.T) {
	_, err := Unmarshal([]byte(`{"a":1} extra`))
	assert.Error(t, err)

	_, err = Unmarshal([]byte(`1 2`))
	assert.Error(t, err)
}

func TestUnmarshalRejectsInvalidJSON(t *testing.T) {
	for _, text := range []string{``, `{`, `{"a":}`, `'single'`} {
		_, err := Unmarshal([]byte(text))
		assert.Error(t, err, "input %q", text)
	}
}
