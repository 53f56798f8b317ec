package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"multibranch-backend/internal/models"
	"multibranch-backend/internal/store"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/crypto/bcrypt"
)

const MsgInvalidCredentials = "Invalid username or password"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotAuthenticated   = errors.New("not signed in")
	ErrTabNotAllowed      = errors.New("tab is not available for this role")
)

type Tab string

const (
	TabAnalytics      Tab = "analytics"
	TabBranches       Tab = "branches"
	TabWorkflows      Tab = "workflows"
	TabAttendance     Tab = "attendance"
	TabPayroll        Tab = "payroll"
	TabStaffDashboard Tab = "staff-dashboard"
)

var (
	adminTabs = []Tab{TabAnalytics, TabBranches, TabWorkflows, TabAttendance, TabPayroll}
	staffTabs = []Tab{TabStaffDashboard}
)

// TabsFor lists the screens a role navigates between. This is a navigation
// filter, not an access policy.
func TabsFor(role models.UserRole) []Tab {
	if role == models.RoleStaff {
		return slices.Clone(staffTabs)
	}
	return slices.Clone(adminTabs)
}

func DefaultTab(role models.UserRole) Tab {
	if role == models.RoleStaff {
		return TabStaffDashboard
	}
	return TabAnalytics
}

func CanReach(role models.UserRole, tab Tab) bool {
	return slices.Contains(TabsFor(role), tab)
}

// Session is Anonymous when User is nil.
type Session struct {
	User      *models.User `json:"user"`
	ActiveTab Tab          `json:"active_tab"`
}

func (s Session) Authenticated() bool {
	return s.User != nil
}

func anonymous() Session {
	return Session{ActiveTab: TabAnalytics}
}

// Shell owns sign-in state. Identity and active tab are persisted per user
// in the KV store so they survive a restart.
type Shell struct {
	kv     store.KV
	users  []models.User
	hashes map[string][]byte
}

// NewShell hashes the fixture passwords once; logins compare with bcrypt.
func NewShell(kv store.KV, users []models.User) (*Shell, error) {
	hashes := make(map[string][]byte, len(users))
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", u.Username, err)
		}
		hashes[u.Username] = hash
	}
	return &Shell{kv: kv, users: slices.Clone(users), hashes: hashes}, nil
}

func userKey(userID string) string { return store.KeyUser + ":" + userID }

func tabKey(userID string) string { return store.KeyActiveTab + ":" + userID }

// Authenticate finds the user with exactly this username and password.
func (s *Shell) Authenticate(username, password string) (models.User, error) {
	for _, u := range s.users {
		if u.Username != username {
			continue
		}
		if err := bcrypt.CompareHashAndPassword(s.hashes[u.Username], []byte(password)); err != nil {
			return models.User{}, ErrInvalidCredentials
		}
		return u, nil
	}
	return models.User{}, ErrInvalidCredentials
}

// Login moves Anonymous to Authenticated, persisting the identity and the
// role's default tab.
func (s *Shell) Login(username, password string) (Session, error) {
	u, err := s.Authenticate(username, password)
	if err != nil {
		return anonymous(), err
	}
	b, err := json.Marshal(u)
	if err != nil {
		return anonymous(), fmt.Errorf("encode session user: %w", err)
	}
	if err := s.kv.Set(userKey(u.ID), string(b)); err != nil {
		return anonymous(), err
	}
	tab := DefaultTab(u.Role)
	if err := s.kv.Set(tabKey(u.ID), string(tab)); err != nil {
		return anonymous(), err
	}
	return Session{User: &u, ActiveTab: tab}, nil
}

// Logout clears the persisted identity and tab. The resulting session
// shows the admin default tab whatever the previous role was.
func (s *Shell) Logout(userID string) (Session, error) {
	if err := s.kv.Delete(userKey(userID)); err != nil {
		return Session{}, err
	}
	if err := s.kv.Delete(tabKey(userID)); err != nil {
		return Session{}, err
	}
	return anonymous(), nil
}

// Restore reads a persisted session. No identity means Anonymous; a missing
// tab falls back to the role default. An identity that does not decode is
// discarded together with its tab.
func (s *Shell) Restore(userID string) (Session, error) {
	raw, ok, err := s.kv.Get(userKey(userID))
	if err != nil {
		return Session{}, err
	}
	if !ok {
		return anonymous(), nil
	}

	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil || u.ID == "" {
		log.Warnf("Failed to parse saved user %s, clearing session: %v", userID, err)
		return s.Logout(userID)
	}

	tab, ok, err := s.kv.Get(tabKey(userID))
	if err != nil {
		return Session{}, err
	}
	if !ok || tab == "" {
		tab = string(DefaultTab(u.Role))
	}
	return Session{User: &u, ActiveTab: Tab(tab)}, nil
}

// SetTab persists the selected tab for an authenticated user.
func (s *Shell) SetTab(sess Session, tab Tab) (Session, error) {
	if !sess.Authenticated() {
		return sess, ErrNotAuthenticated
	}
	if !CanReach(sess.User.Role, tab) {
		return sess, ErrTabNotAllowed
	}
	if err := s.kv.Set(tabKey(sess.User.ID), string(tab)); err != nil {
		return sess, err
	}
	sess.ActiveTab = tab
	return sess, nil
}
