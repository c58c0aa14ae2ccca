// Package memoria provides a Go client for the memoria agent API: ranked
// search over a caller's documents and retrieval of a document by handle.
//
//	client, _ := memoria.New(
//	    memoria.WithBaseURL("http://localhost:8080"),
//	    memoria.WithToken(os.Getenv("MEMORIA_PAT")),
//	)
//	results, _ := client.Search(ctx, "design review", memoria.SearchOptions{Limit: 3})
//	doc, _ := client.GetDocument(ctx, results[0].DocHandle, memoria.GetOptions{})
//
// Errors returned by the API unwrap to the sentinel errors of this package;
// use errors.Is to check them.
package memoria
