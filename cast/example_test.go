package cast_test

import (
	"errors"
	"fmt"

	"iface-caster/cast"
)

func Example() {
	var opaque any = &A{X: 5}

	if b, ok := cast.Ref[Bar](opaque); ok {
		fmt.Println("bar:", b.Bar())
	}

	if _, ok := cast.Ref[Bar](&B{}); !ok {
		fmt.Println("B is not a Bar")
	}

	a := &A{}
	f, _ := cast.Mut[Foo](a)
	first := f.Foo()
	second := f.Foo()
	fmt.Println(first, second, a.X)
	// Output:
	// bar: 5
	// B is not a Bar
	// 1 2 2
}

func ExampleOwned() {
	_, err := cast.Owned[Foo](B{})

	var notImpl *cast.NotImplementedError
	if errors.As(err, &notImpl) {
		fmt.Printf("got back %T\n", notImpl.Value)
	}
	// Output:
	// got back cast_test.B
}
