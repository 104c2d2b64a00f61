package cacheclient

import (
	"context"
	"errors"
	"github.com/QuangTung97/go-memcache/memcache"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestToLeaseGetOutput(t *testing.T) {
	assert.Equal(t, LeaseGetOutput{
		Type:    LeaseGetTypeGranted,
		LeaseID: 55,
	}, toLeaseGetOutput(memcache.MGetResponse{
		Type:  memcache.MGetResponseTypeVA,
		Flags: memcache.MGetFlagW,
		CAS:   55,
	}))

	assert.Equal(t, LeaseGetOutput{
		Type: LeaseGetTypeRejected,
	}, toLeaseGetOutput(memcache.MGetResponse{
		Type:  memcache.MGetResponseTypeVA,
		Flags: memcache.MGetFlagZ,
		CAS:   55,
	}))

	assert.Equal(t, LeaseGetOutput{
		Type: LeaseGetTypeOK,
		Data: []byte("some value"),
	}, toLeaseGetOutput(memcache.MGetResponse{
		Type: memcache.MGetResponseTypeVA,
		Data: []byte("some value"),
	}))
}

type leaseClientStub struct {
	outputs []LeaseGetOutput
	err     error

	getKeys    []string
	getTTLs    []uint32
	deleteKeys []string
}

func (s *leaseClientStub) LeaseGet(key string, ttl uint32) (LeaseGetOutput, error) {
	s.getKeys = append(s.getKeys, key)
	s.getTTLs = append(s.getTTLs, ttl)
	if s.err != nil {
		return LeaseGetOutput{}, s.err
	}
	output := s.outputs[0]
	s.outputs = s.outputs[1:]
	return output, nil
}

func (s *leaseClientStub) Delete(key string) error {
	s.deleteKeys = append(s.deleteKeys, key)
	return nil
}

func TestLease__Granted_Then_Rejected(t *testing.T) {
	stub := &leaseClientStub{
		outputs: []LeaseGetOutput{
			{Type: LeaseGetTypeGranted, LeaseID: 11},
			{Type: LeaseGetTypeRejected},
		},
	}
	l := newLease(stub, "lock01", 60)

	ok, err := l.TryLock(context.Background())
	assert.Equal(t, nil, err)
	assert.Equal(t, true, ok)

	ok, err = l.TryLock(context.Background())
	assert.Equal(t, nil, err)
	assert.Equal(t, false, ok)

	err = l.Unlock(context.Background())
	assert.Equal(t, nil, err)

	assert.Equal(t, []string{"lock01", "lock01"}, stub.getKeys)
	assert.Equal(t, []uint32{60, 60}, stub.getTTLs)
	assert.Equal(t, []string{"lock01"}, stub.deleteKeys)
}

func TestLease__Existing_Value_Is_Not_Granted(t *testing.T) {
	stub := &leaseClientStub{
		outputs: []LeaseGetOutput{{Type: LeaseGetTypeOK, Data: []byte("x")}},
	}
	l := newLease(stub, "lock01", 60)

	ok, err := l.TryLock(context.Background())
	assert.Equal(t, nil, err)
	assert.Equal(t, false, ok)
}

func TestLease__Error(t *testing.T) {
	stub := &leaseClientStub{err: errors.New("connection refused")}
	l := newLease(stub, "lock01", 60)

	ok, err := l.TryLock(context.Background())
	assert.Equal(t, errors.New("connection refused"), err)
	assert.Equal(t, false, ok)
}
