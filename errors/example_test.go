package errors_test

import (
	"encoding/json"
	"fmt"

	"github.com/ymjaber/fluent-unions-sub003/errors"
)

func ExampleNew() {
	err := errors.New("user.missing", "user not found")
	fmt.Println(err.Error())
	// Output: Error: user.missing - user not found
}

func ExampleValidation() {
	err := errors.Validation("name.empty", "name must not be empty",
		errors.Field{Key: "field", Value: "name"})
	fmt.Println(err.Error())
	// Output: ValidationError: name.empty - name must not be empty - Metadata: {field: name}
}

func ExampleAggregate() {
	err := errors.Aggregate(
		errors.Validation("name.empty", "name is required"),
		errors.Validation("age.range", "age must be positive"),
	)
	fmt.Println(err.Error())
	// Output: AggregateError: errors.aggregate - multiple errors occurred ( ValidationError: name.empty - name is required, ValidationError: age.range - age must be positive )
}

func ExampleBuilder() {
	b := errors.NewBuilder()
	b.Append(errors.Validation("name.empty", "name is required"))
	b.Append(errors.Validation("age.range", "age must be positive"))

	if err, found := b.TryBuild(); found {
		fmt.Println(len(err.Errors()), "problems")
	}
	// Output: 2 problems
}

func ExampleBuilder_single() {
	b := errors.NewBuilder()
	b.Append(errors.New("io.read", "read failed"))

	err, _ := b.TryBuild()
	fmt.Println(err.Kind())
	// Output: failure
}

func ExampleError_MarshalJSON() {
	err := errors.NotFound("user.missing", "no such user")
	data, _ := json.Marshal(err)
	fmt.Println(string(data))
	// Output: {"kind":"not_found","code":"user.missing","message":"no such user"}
}

func ExampleFromParts() {
	err, _ := errors.FromParts("conflict", "version.stale", "version mismatch")
	fmt.Println(err.Error())
	// Output: ConflictError: version.stale - version mismatch
}
