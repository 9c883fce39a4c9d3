/*

Process of generation

Deployment layout (auto, packaged, fixed) ->
	resolve ->
Schema Store (proto/xolir/*.proto) ->
	compile ->
Descriptors (schema.Schema) ->
	emit ->
Go bindings (internal/xolirpb, re-exported by ir)

Staging

Schema Store ->
	stage ->
Package with ./proto ->
	resolve (packaged) ->
	...

*/
package compiler
