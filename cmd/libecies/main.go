// Command libecies is the C library. Build it with
//
//	go build -buildmode=c-shared -o libecies.so ./cmd/libecies
//
// Every returned pointer is owned by the caller and must be passed to
// ecies_release exactly once. Every function takes a nullable int* that
// receives the status code; NULL is returned on failure.
package main

func main() {}
