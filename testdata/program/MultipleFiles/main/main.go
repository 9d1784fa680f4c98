package main

import "fmt"

func main() {
	u := UserIDFrom(7)
	fmt.Println(u.AsRef(), lookup(u))

	// Output:
	// 7 alice
}
