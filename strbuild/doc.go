// Package strbuild builds strings by appending values of any type, so that a
// one-off string does not need an explicit bytes.Buffer or fmt.Sprintf call:
//
//	for i := range rng.Upto(3).All() {
//	    name := strbuild.New().Add("output_").Add(i).Add(".txt").String()
//	    // output_0.txt, output_1.txt, output_2.txt
//	}
//
// Values are rendered exactly as fmt.Print renders a single operand.
package strbuild
