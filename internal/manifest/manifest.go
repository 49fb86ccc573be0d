// Package manifest models package.json documents as ordered JSON objects and
// handles reading and atomically rewriting them.
package manifest

// Well-known manifest keys.
const (
	KeyName       = "name"
	KeyVersion    = "version"
	KeyRepository = "repository"
	KeyDirectory  = "directory"
	KeyWorkspaces = "workspaces"
)

// DefaultVersion is reported for manifests without a version field.
const DefaultVersion = "0.0.0"

// Manifest is one package.json document. Well-known fields have typed accessors;
// every other key is kept verbatim, in its original position.
type Manifest struct {
	fields *Object
}

// New returns an empty manifest.
func New() *Manifest {
	return &Manifest{fields: NewObject()}
}

// FromObject wraps obj without copying it.
func FromObject(obj *Object) *Manifest {
	if obj == nil {
		obj = NewObject()
	}
	return &Manifest{fields: obj}
}

// Parse decodes a manifest from JSON.
func Parse(data []byte) (*Manifest, error) {
	obj, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return FromObject(obj), nil
}

// Object returns the underlying ordered object.
func (m *Manifest) Object() *Object { return m.fields }

// Len returns the number of top-level keys.
func (m *Manifest) Len() int { return m.fields.Len() }

// Keys returns the top-level keys in order.
func (m *Manifest) Keys() []string { return Keys(m.fields) }

// Has reports whether key is present, even with a null value.
func (m *Manifest) Has(key string) bool {
	_, ok := m.fields.Get(key)
	return ok
}

// Get returns the raw value for key.
func (m *Manifest) Get(key string) (any, bool) {
	return m.fields.Get(key)
}

// Set sets key, keeping its position when it already exists and appending otherwise.
func (m *Manifest) Set(key string, value any) {
	m.fields.Set(key, value)
}

// Delete removes key.
func (m *Manifest) Delete(key string) {
	m.fields.Delete(key)
}

// String returns the string value of key, or "" if absent or not a string.
func (m *Manifest) String(key string) string {
	v, _ := m.fields.Get(key)
	s, _ := v.(string)
	return s
}

// Name returns the package name, or "".
func (m *Manifest) Name() string {
	return m.String(KeyName)
}

// Version returns the version string and whether a usable one was present.
func (m *Manifest) Version() (string, bool) {
	v := m.String(KeyVersion)
	return v, v != ""
}

// VersionOrDefault returns the version, falling back to DefaultVersion.
func (m *Manifest) VersionOrDefault() string {
	if v, ok := m.Version(); ok {
		return v
	}
	return DefaultVersion
}

// SetVersion replaces the version in place. A manifest without a version gets
// the field right after "name", or first when there is no name.
func (m *Manifest) SetVersion(version string) {
	if _, exists := m.fields.Get(KeyVersion); exists {
		m.fields.Set(KeyVersion, version)
		return
	}
	m.fields.Set(KeyVersion, version)
	if _, hasName := m.fields.Get(KeyName); hasName {
		_ = m.fields.MoveAfter(KeyVersion, KeyName)
		return
	}
	_ = m.fields.MoveToFront(KeyVersion)
}

// Repository returns the repository block when it is an object.
func (m *Manifest) Repository() (*Object, bool) {
	v, _ := m.fields.Get(KeyRepository)
	obj, ok := v.(*Object)
	return obj, ok && obj != nil
}

// Clone returns a deep copy.
func (m *Manifest) Clone() *Manifest {
	return &Manifest{fields: CloneObject(m.fields)}
}

// Bytes encodes the manifest in the on-disk format.
func (m *Manifest) Bytes() ([]byte, error) {
	return Encode(m.fields)
}
