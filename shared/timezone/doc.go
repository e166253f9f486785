// Package timezone holds the curated zone catalog and the location helpers
// shared by the registry and the renderer.
//
// Usage Examples:
//
//  1. Offering choices to a user:
//     for _, region := range timezone.Catalog() {
//     for _, entry := range region.Entries { ... entry.Label, entry.Zone ... }
//     }
//
//  2. Validating a choice before storing it:
//     ok := timezone.IsCataloged("Europe/Berlin")
//
//  3. Converting an instant:
//     loc, err := timezone.LoadLocation("Asia/Tokyo")
//     label := timezone.OffsetLabel(instant.In(loc)) // "UTC+9"
//
// Only canonical IANA names are stored ("Europe/Berlin"); display labels are
// for presentation. Several labels may share a zone. The tz database is
// embedded so lookups do not depend on the host's zoneinfo files.
package timezone
