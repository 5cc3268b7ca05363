package a

import (
	"fmt"

	"github.com/stealthrocket/exception"
)

func swallow() {
	defer func() {
		if v := recover(); v != nil { // want `recover may swallow exception signals`
			fmt.Println(v)
		}
	}()
	exception.Signal(1)
}

func passThrough() {
	defer func() {
		if v := recover(); v != nil {
			if exception.Propagating(v) {
				panic(v)
			}
			fmt.Println(v)
		}
	}()
	exception.Signal(1)
}

func named() {
	defer handle()
	exception.Signal(2)
}

func handle() {
	recover() // want `recover may swallow exception signals`
}

func checkedElsewhere() {
	defer func() {
		v := recover() // want `recover may swallow exception signals`
		_ = v
	}()
	_ = exception.Propagating(nil)
}
