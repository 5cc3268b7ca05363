package b

import "fmt"

func unrelated() {
	defer func() {
		if v := recover(); v != nil {
			fmt.Println(v)
		}
	}()
	panic("not an exception")
}
