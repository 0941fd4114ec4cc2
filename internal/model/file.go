package model

// File stores an uploaded blob with its extension so it can be served
// back with a sensible filename.
type File struct {
	ID        int `gorm:"primaryKey"`
	Content   []byte
	Extension string
}
