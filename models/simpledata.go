package models

// SimpleItem is an id/name pair used by the lookup collections.
type SimpleItem struct {
	ID   int    `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

type LegalCategory = SimpleItem

type JudicialRegion = SimpleItem

type City = SimpleItem
