package bot

import (
	"reflect"
	"testing"
)

func TestGetArgs(t *testing.T) {
	cases := []struct {
		in  string
		out []string
	}{
		// /quote payloads
		{`3`, []string{`3`}},
		{` 3 `, []string{`3`}},
		{`3 5`, []string{`3`, `5`}},
		// Double spaces
		{`3  5`, []string{`3`, `5`}},
		// Quoted arguments keep their spaces
		{`"feel better"`, []string{`feel better`}},
		{`"feel better" now`, []string{`feel better`, `now`}},
		{`now "feel  better"`, []string{`now`, `feel  better`}},
		// Unterminated quotes capture the rest of the payload
		{`now "feel better`, []string{`now`, `feel better`}},
	}

	for _, el := range cases {
		res := GetArgs(el.in)
		if !reflect.DeepEqual(res, el.out) {
			t.Fatalf("Expected result for %q to be %v, but got %v", el.in, el.out, res)
		}
	}
}
