package emby

import "time"

// Person is an actor, director or other credited person.
type Person struct{ Entity }

func newPerson(raw map[string]any, conn Connector) *Person {
	return &Person{Entity: *newEntity(raw, conn)}
}

// Role returns the part the person is credited with, when present.
func (p *Person) Role() string { return p.stringField("Role") }

// Folder is a plain container record.
type Folder struct{ Entity }

func newFolder(raw map[string]any, conn Connector) *Folder {
	return &Folder{Entity: *newEntity(raw, conn)}
}

// Device is a client device known to the server. Device records have no
// Type tag on some server versions, in which case they resolve as generic
// entities.
type Device struct{ Entity }

func newDevice(raw map[string]any, conn Connector) *Device {
	return &Device{Entity: *newEntity(raw, conn)}
}

func (d *Device) AppName() string      { return d.stringField("AppName") }
func (d *Device) LastUserName() string { return d.stringField("LastUserName") }

func (d *Device) LastActivity() time.Time { return d.timeField("DateLastActivity") }

// User is a server account.
type User struct{ Entity }

func newUser(raw map[string]any, conn Connector) *User {
	return &User{Entity: *newEntity(raw, conn)}
}

func (u *User) HasPassword() bool { return u.boolField("HasPassword") }

func (u *User) LastLogin() time.Time { return u.timeField("LastLoginDate") }
