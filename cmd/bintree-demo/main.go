// Copyright 2014 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command bintree-demo exercises the bintree container with several element
// types and prints the results for manual inspection.
package main

import (
	"fmt"
	"log"
	"os"

	bintree "github.com/FrasapDev/BinaryTree"
)

// Account is a user-defined record ordered and equated by ID.
type Account struct {
	ID   int
	Name string
}

func (a Account) String() string {
	return fmt.Sprintf("{%d, %s}", a.ID, a.Name)
}

func mustInsert[T any](tr *bintree.Tree[T], values ...T) {
	for _, v := range values {
		if err := tr.Insert(v); err != nil {
			log.Fatalf("insert %v: %v", v, err)
		}
	}
}

func demoInts() {
	fmt.Println("Testing bintree with int values:")
	tr := bintree.NewOrdered[int]()
	mustInsert(tr, 5, 3, 8, 1, 4)

	fmt.Println("Int tree:", tr)
	fmt.Println("Tree size:", tr.Len())
	fmt.Println("Tree contains 3:", tr.Has(3))
	fmt.Println("Tree contains 7:", tr.Has(7))
	fmt.Println("Subtree rooted at 3:", tr.Subtree(3))
	fmt.Println("Copied tree:", tr.Clone())

	assigned := bintree.NewOrdered[int]()
	assigned.CopyFrom(tr)
	fmt.Println("Assigned tree:", assigned)

	even := bintree.NewOrdered[int]()
	mustInsert(even, 4, 2, 6, 1, 8, 10)
	fmt.Println("Tree for even-filter test:", even)
	fmt.Print("Print only even ints in the tree: ")
	bintree.PrintIf(os.Stdout, even, func(v int) bool { return v%2 == 0 })
}

func demoFloats() {
	fmt.Println("Testing bintree with float64 values:")
	tr := bintree.NewOrdered[float64]()
	mustInsert(tr, 5.5, 3.3, 8.8, 1.1, 4.4)

	fmt.Println("Float tree:", tr)
	fmt.Println("Tree size:", tr.Len())
	fmt.Println("Tree contains 3.3:", tr.Has(3.3))
	fmt.Println("Tree contains 7.7:", tr.Has(7.7))
	fmt.Println("Subtree rooted at 3.3:", tr.Subtree(3.3))
	fmt.Println("Copied tree:", tr.Clone())
}

func demoStrings() {
	fmt.Println("Testing bintree with string values:")
	tr := bintree.NewOrdered[string]()
	mustInsert(tr, "banana", "apple", "cherry", "date", "elderberry")

	fmt.Println("String tree:", tr)
	fmt.Println("Tree size:", tr.Len())
	fmt.Println("Tree contains 'apple':", tr.Has("apple"))
	fmt.Println("Tree contains 'fig':", tr.Has("fig"))
	fmt.Println("Subtree rooted at 'apple':", tr.Subtree("apple"))
	fmt.Println("Copied tree:", tr.Clone())
}

func demoAccounts() {
	fmt.Println("Testing bintree with a user-defined record:")
	tr := bintree.New(
		func(a, b Account) bool { return a.ID < b.ID },
		func(a, b Account) bool { return a.ID == b.ID },
	)
	mustInsert(tr,
		Account{1, "one"},
		Account{2, "two"},
		Account{3, "three"},
		Account{4, "four"},
		Account{5, "five"},
	)

	fmt.Println("Account tree:", tr)
	fmt.Println("Tree size:", tr.Len())
	fmt.Println("Tree contains {2, two}:", tr.Has(Account{2, "two"}))
	fmt.Println("Tree contains {6, six}:", tr.Has(Account{6, "six"}))
	fmt.Println("Subtree rooted at {2, two}:", tr.Subtree(Account{2, "two"}))

	if err := tr.Insert(Account{3, "tre"}); err != nil {
		fmt.Println("Duplicate ID rejected:", err)
	}
}

func main() {
	demoInts()
	fmt.Println()
	demoFloats()
	fmt.Println()
	demoStrings()
	fmt.Println()
	demoAccounts()
}
