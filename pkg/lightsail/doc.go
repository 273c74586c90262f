// Where: pkg/lightsail/doc.go
// What: Package documentation for the Lightsail model objects.
// Why: Describe the presence and mutation conventions once for every type.

// Package lightsail holds the request, result, and nested value objects of
// the Lightsail API.
//
// Every member is optional. Scalars are pointers, lists are slices, and maps
// are maps; nil means the member was never set. A non-nil empty list or map
// is present and empty, and is not equal to an absent one.
//
// Fields may be read and assigned directly. WithX methods set a member and
// return the receiver so calls can be chained:
//
//	req := new(lightsail.CreateDiskRequest).
//		WithDiskName("my-disk").
//		WithAvailabilityZone("us-east-2a").
//		WithSizeInGb(32)
//
// List WithX methods append, creating the list when absent. SetX replaces
// the list with a copy. Map members add entries one at a time with
// AddXEntry, which rejects a key that is already present.
//
// Enum members use open string types. Any string is accepted, and the
// constants list only the values known when this package was built.
package lightsail
