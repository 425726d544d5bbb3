package content

import (
	"encoding/json"
	"errors"

	bolt "go.etcd.io/bbolt"
	"golang.org/x/crypto/bcrypt"

	cerrors "github.com/samplecafe/cafe/internal/errors"
)

// MinPasswordLength is the shortest password SetPassword accepts.
const MinPasswordLength = 8

// ErrInvalidCredentials is returned by Authenticate for an unknown user
// or a wrong password.
var ErrInvalidCredentials = errors.New("content: invalid credentials")

// EnsureAdmin creates the account when no user exists yet. It reports
// whether an account was created.
func (s *Store) EnsureAdmin(username, password string) (bool, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	created := false
	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketUsers))
		if !isEmpty(b) {
			return nil
		}
		created = true
		return putUser(b, User{Username: username, PasswordHash: hash, CreatedAt: s.timestamp()})
	})
	return created, err
}

// Authenticate checks username and password.
func (s *Store) Authenticate(username, password string) (User, error) {
	u, err := s.user(username)
	if errors.Is(err, ErrNotFound) {
		// Burn a comparison so unknown users take as long as wrong passwords.
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return User{}, ErrInvalidCredentials
	}
	if err != nil {
		return User{}, err
	}
	if bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("cafe-dummy-password"), bcrypt.MinCost)

// SetPassword sets the password of username, creating the user if needed.
func (s *Store) SetPassword(username, password string) error {
	if username == "" {
		return cerrors.New("C600").WithDetail("A username is required.")
	}
	if len(password) < MinPasswordLength {
		return cerrors.New("C401")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketUsers))
		u := User{Username: username, CreatedAt: s.timestamp()}
		if v := b.Get([]byte(username)); v != nil {
			if err := json.Unmarshal(v, &u); err != nil {
				return err
			}
		}
		u.PasswordHash = hash
		return putUser(b, u)
	})
}

func (s *Store) user(username string) (User, error) {
	var u User
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketUsers)).Get([]byte(username))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &u)
	})
	return u, err
}

func putUser(b *bolt.Bucket, u User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return b.Put([]byte(u.Username), data)
}
