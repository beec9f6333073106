package ledger

// Backend is the key-value store behind a Ledger. Values are opaque bytes;
// the Ledger owns serialization.
type Backend interface {
	CreateBucket(name []byte) error
	Put(bucket, key, value []byte) error
	Get(bucket, key []byte) ([]byte, error)
	ForEach(bucket []byte, fn func(k, v []byte) error) error
	Close() error
}
