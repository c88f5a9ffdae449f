package main

import (
	"fmt"
	"reflect"
)

// item is the record a three-element tuple would hold.
type item struct {
	ISBN  string
	Count int
	Price float64
}

// splitItem returns the fields as separate results.
func splitItem(it item) (string, int, float64) {
	return it.ISBN, it.Count, it.Price
}

// fieldCount is tuple_size for a struct type.
func fieldCount(v any) int {
	t := reflect.TypeOf(v)
	if t == nil || t.Kind() != reflect.Struct {
		return 0
	}
	return t.NumField()
}

func demoTuples() {
	var threeD struct{ X, Y, Z int }
	threeD2 := struct{ X, Y, Z int }{1, 2, 3}
	fmt.Printf("  threeD=%+v threeD2=%+v\n", threeD, threeD2)

	someVal := struct {
		Name   string
		Consts []float64
		Answer int
		List   []int
	}{"constants", []float64{3.14, 2.718}, 42, []int{0, 1, 2, 3, 4, 5}}
	fmt.Printf("  someVal=%+v\n", someVal)

	it := item{"0-999-78345-X", 3, 20.00}
	isbn, cnt, _ := splitItem(it)
	fmt.Println("  first field:", isbn, " second:", cnt)
	fmt.Println("  field count:", fieldCount(it))
	fmt.Println("  tuple type of Count:", reflect.TypeOf(it).Field(1).Type)
}
