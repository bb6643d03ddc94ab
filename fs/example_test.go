package fs_test

import (
	"fmt"

	"github.com/jmgilman/go/gen/errors"
	"github.com/jmgilman/go/gen/fs"
	"github.com/jmgilman/go/gen/fs/billy"
)

func ExampleFS_Read() {
	f := fs.New(billy.NewMemory())

	_, err := f.Read("/include/missing.h")
	fmt.Println(err)
	fmt.Println(errors.Is(err, fs.ErrNotExist))
	fmt.Println(errors.GetCode(err))
	// Output:
	// Failed to read file `/include/missing.h`
	// true
	// NOT_FOUND
}
