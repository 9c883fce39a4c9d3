// Package ir is the Go binding of the XOLIR intermediate representation.
//
// A Program is a tree of plain values: files, struct types and functions
// whose bodies are Expression trees. Values encode to the protobuf wire
// format with MarshalBinary, so any toolchain component built from the same
// schema store can read them, whatever language it is written in.
//
//	p := ir.NewProgram("Hello World", nil, nil, nil)
//	b, _ := p.MarshalBinary()
//
//	var q ir.Program
//	err := q.UnmarshalBinary(b)
//
// The types are generated from proto/xolir by the xolir command and live in
// an internal package; this package only re-exports them.
package ir

//go:generate go run ../cmd/xolir gen -out ../internal/xolirpb
