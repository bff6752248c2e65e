package types_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/wirereport/pkg/domain/types"
)

func TestNumberUnmarshal(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  float64
	}{
		{"integer", `12`, 12},
		{"float", `1.5`, 1.5},
		{"numeric string", `"42.25"`, 42.25},
		{"padded string", `" 7 "`, 7},
		{"non numeric string", `"abc"`, 0},
		{"null", `null`, 0},
		{"bool", `true`, 0},
		{"object", `{"a":1}`, 0},
		{"array", `[1,2]`, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var v struct {
				N types.Number `json:"n"`
			}
			gt.NoError(t, json.Unmarshal([]byte(`{"n":`+tc.input+`}`), &v))
			gt.Equal(t, tc.want, v.N.Float())
		})
	}
}

func TestOptionalNumberUnmarshal(t *testing.T) {
	t.Run("numeric string is valid", func(t *testing.T) {
		var v struct {
			N types.OptionalNumber `json:"n"`
		}
		gt.NoError(t, json.Unmarshal([]byte(`{"n":"3.5"}`), &v))
		n, ok := v.N.Get()
		gt.True(t, ok)
		gt.Equal(t, 3.5, n)
	})

	t.Run("garbage is invalid", func(t *testing.T) {
		var v struct {
			N types.OptionalNumber `json:"n"`
		}
		gt.NoError(t, json.Unmarshal([]byte(`{"n":"n/a"}`), &v))
		_, ok := v.N.Get()
		gt.False(t, ok)
	})

	t.Run("absent is invalid", func(t *testing.T) {
		var v struct {
			N types.OptionalNumber `json:"n"`
		}
		gt.NoError(t, json.Unmarshal([]byte(`{}`), &v))
		_, ok := v.N.Get()
		gt.False(t, ok)
	})
}

func TestTextUnmarshal(t *testing.T) {
	var v struct {
		A types.Text `json:"a"`
		B types.Text `json:"b"`
		C types.Text `json:"c"`
		D types.Text `json:"d"`
	}
	gt.NoError(t, json.Unmarshal([]byte(`{"a":"hello","b":123,"c":{"x":1},"d":null}`), &v))
	gt.Equal(t, "hello", v.A.String())
	gt.Equal(t, "123", v.B.String())
	gt.Equal(t, "", v.C.String())
	gt.Equal(t, "fallback", v.D.Or("fallback"))
}

func TestListUnmarshal(t *testing.T) {
	type item struct {
		Name  types.Text   `json:"name"`
		Count types.Number `json:"count"`
	}

	t.Run("array of objects", func(t *testing.T) {
		var v struct {
			Items types.List[item] `json:"items"`
		}
		gt.NoError(t, json.Unmarshal([]byte(`{"items":[{"name":"a","count":1},{"name":"b","count":"2"}]}`), &v))
		gt.Equal(t, 2, len(v.Items.Items()))
		gt.Equal(t, 2.0, v.Items[1].Count.Float())
	})

	t.Run("object instead of array", func(t *testing.T) {
		var v struct {
			Items types.List[item] `json:"items"`
		}
		gt.NoError(t, json.Unmarshal([]byte(`{"items":{"name":"a"}}`), &v))
		gt.Equal(t, 0, len(v.Items.Items()))
	})

	t.Run("absent list yields empty slice", func(t *testing.T) {
		var v struct {
			Items types.List[item] `json:"items"`
		}
		gt.NoError(t, json.Unmarshal([]byte(`{}`), &v))
		gt.True(t, v.Items.Items() != nil)
		gt.Equal(t, 0, len(v.Items.Items()))

		raw, err := json.Marshal(v.Items.Items())
		gt.NoError(t, err).Required()
		gt.Equal(t, "[]", string(raw))
	})

	t.Run("non object elements are dropped", func(t *testing.T) {
		var v types.List[item]
		gt.NoError(t, json.Unmarshal([]byte(`[1, {"name":"x"}, "y", null]`), &v))
		gt.Equal(t, 2, len(v.Items()))
		gt.Equal(t, "x", v[0].Name.String())
	})
}

func TestFlagUnmarshal(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{`true`, true},
		{`false`, false},
		{`null`, false},
		{`0`, false},
		{`1`, true},
		{`""`, false},
		{`"0"`, true},
		{`"yes"`, true},
		{`{"id":"sp"}`, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			var v struct {
				F types.Flag `json:"f"`
			}
			gt.NoError(t, json.Unmarshal([]byte(`{"f":`+tc.input+`}`), &v))
			gt.Equal(t, tc.want, v.F.Bool())
		})
	}

	t.Run("absent", func(t *testing.T) {
		var v struct {
			F types.Flag `json:"f"`
		}
		gt.NoError(t, json.Unmarshal([]byte(`{}`), &v))
		gt.False(t, v.F.Bool())
	})
}
