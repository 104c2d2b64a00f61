package cacheclient

import (
	"context"
	"github.com/QuangTung97/go-memcache/memcache"
	"time"
)

// Client ...
type Client struct {
	client *memcache.Client
}

// New ...
func New(addr string, numConns int) *Client {
	client, err := memcache.New(addr, numConns, memcache.WithRetryDuration(10*time.Second))
	if err != nil {
		panic(err)
	}
	return &Client{
		client: client,
	}
}

// UnsafeFlushAll ...
func (c *Client) UnsafeFlushAll() error {
	return c.client.Pipeline().FlushAll()()
}

// Close ...
func (c *Client) Close() error {
	return c.client.Close()
}

// LeaseGetType ...
type LeaseGetType int

const (
	// LeaseGetTypeOK when entry is found
	LeaseGetTypeOK LeaseGetType = 1

	// LeaseGetTypeGranted when entry is not found but lease is granted
	LeaseGetTypeGranted LeaseGetType = 2

	// LeaseGetTypeRejected when entry is not found and lease is not granted
	LeaseGetTypeRejected LeaseGetType = 3
)

// LeaseGetOutput ...
type LeaseGetOutput struct {
	Type    LeaseGetType
	Data    []byte
	LeaseID uint64
}

// LeaseGet creates the entry with ttl seconds when it's missing and grants the lease to exactly one caller
func (c *Client) LeaseGet(key string, ttl uint32) (LeaseGetOutput, error) {
	resp, err := c.client.Pipeline().MGet(key, memcache.MGetOptions{
		N:   ttl,
		CAS: true,
	})()
	if err != nil {
		return LeaseGetOutput{}, err
	}
	return toLeaseGetOutput(resp), nil
}

func toLeaseGetOutput(resp memcache.MGetResponse) LeaseGetOutput {
	if resp.Type != memcache.MGetResponseTypeVA || resp.Flags&memcache.MGetFlagZ != 0 {
		return LeaseGetOutput{
			Type: LeaseGetTypeRejected,
		}
	}

	if resp.Flags&memcache.MGetFlagW != 0 {
		return LeaseGetOutput{
			Type:    LeaseGetTypeGranted,
			LeaseID: resp.CAS,
		}
	}

	return LeaseGetOutput{
		Type: LeaseGetTypeOK,
		Data: resp.Data,
	}
}

// Delete ...
func (c *Client) Delete(key string) error {
	_, err := c.client.Pipeline().MDel(key, memcache.MDelOptions{})()
	return err
}

// Lease is a lock that expires by itself after ttl seconds
type Lease struct {
	client leaseClient
	key    string
	ttl    uint32
}

type leaseClient interface {
	LeaseGet(key string, ttl uint32) (LeaseGetOutput, error)
	Delete(key string) error
}

// NewLease ...
func NewLease(client *Client, key string, ttlSeconds uint32) *Lease {
	return newLease(client, key, ttlSeconds)
}

func newLease(client leaseClient, key string, ttlSeconds uint32) *Lease {
	return &Lease{
		client: client,
		key:    key,
		ttl:    ttlSeconds,
	}
}

// TryLock returns true only when the lease is granted to this call
func (l *Lease) TryLock(_ context.Context) (bool, error) {
	output, err := l.client.LeaseGet(l.key, l.ttl)
	if err != nil {
		return false, err
	}
	return output.Type == LeaseGetTypeGranted, nil
}

// Unlock ...
func (l *Lease) Unlock(_ context.Context) error {
	return l.client.Delete(l.key)
}
