package models

// ObjectType is a category of entity synchronised independently, each with
// its own version counter per library.
type ObjectType string

const (
	ObjectCollection    ObjectType = "collection"
	ObjectItem          ObjectType = "item"
	ObjectSearch        ObjectType = "search"
	ObjectTag           ObjectType = "tag"
	ObjectTrash         ObjectType = "trash-entry"
	ObjectGroupMetadata ObjectType = "group-metadata"
)

// SyncOrder is the order in which object types are downloaded and applied for
// every library. Collections come first so that items referencing them
// resolve; tags come last since they are derived from items.
var SyncOrder = []ObjectType{
	ObjectCollection,
	ObjectSearch,
	ObjectItem,
	ObjectTrash,
	ObjectTag,
}

// AllObjectTypes lists every known object type.
var AllObjectTypes = []ObjectType{
	ObjectCollection,
	ObjectItem,
	ObjectSearch,
	ObjectTag,
	ObjectTrash,
	ObjectGroupMetadata,
}

// Valid reports whether t is one of the known object types.
func (t ObjectType) Valid() bool {
	for _, known := range AllObjectTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (t ObjectType) String() string {
	return string(t)
}
