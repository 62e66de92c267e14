// Package types defines the Event and Date value types and the typed
// error taxonomy shared by the calctl storage and service layers.
package types
