package errors_test

import (
	"fmt"
	"io/fs"

	"github.com/jmgilman/go/gen/errors"
)

func ExampleNew() {
	err := errors.New(errors.CodeNotFound, "target directory not found")
	fmt.Println(err.Error())
	// Output: [NOT_FOUND] target directory not found
}

func ExampleWrap() {
	err := errors.Wrap(fs.ErrPermission, errors.CodeForbidden, "failed to write config")

	fmt.Println(errors.GetCode(err))
	fmt.Println(errors.Is(err, fs.ErrPermission))
	// Output:
	// FORBIDDEN
	// true
}

func ExampleWithContext() {
	err := errors.New(errors.CodeIO, "copy failed")
	err = errors.WithContext(err, "from", "a.h")
	err = errors.WithContext(err, "to", "b.h")

	ctx := err.Context()
	fmt.Printf("%s -> %s\n", ctx["from"], ctx["to"])
	// Output: a.h -> b.h
}
