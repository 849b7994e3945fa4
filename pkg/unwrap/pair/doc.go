// Package pair applies the unwrap operations straight to Go's native
// two-value returns, (T, error) and (T, bool), without wrapping them first.
// The comma-ok forms carry an OK suffix and cover the Option operations:
//
//	cfg := pair.OrPanic(os.ReadFile(path))
//
//	port, ok := os.LookupEnv("PORT")
//	port = pair.PanicOrOK(port, ok, "8080")
package pair
