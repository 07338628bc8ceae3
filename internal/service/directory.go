package service

import (
	"crypto/tls"
	"time"

	"firmdesk-backend/internal/config"
	apperrors "firmdesk-backend/internal/errors"

	"github.com/go-ldap/ldap/v3"
)

// DirectoryUser represents a subset of directory attributes returned by a
// staff directory search. Firms that run an internal directory use this to
// look up a colleague's email before adding them as a member.
type DirectoryUser struct {
	DN          string `json:"dn"`
	DisplayName string `json:"display_name"`
	Mail        string `json:"mail"`
	GivenName   string `json:"given_name"`
	SN          string `json:"sn"`
	Mobile      string `json:"mobile"`
}

// DirectoryService provides staff directory lookups over LDAP
type DirectoryService struct {
	cfg *config.Config
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(cfg *config.Config) *DirectoryService {
	return &DirectoryService{cfg: cfg}
}

// SearchByName searches directory users by common name (prefix match).
// Returns ErrDirectoryNotConfigured when no LDAP host is configured.
func (s *DirectoryService) SearchByName(name string) ([]DirectoryUser, error) {
	if !s.cfg.DirectoryEnabled() {
		return nil, apperrors.ErrDirectoryNotConfigured
	}

	addr := s.cfg.LDAPHost + ":" + s.cfg.LDAPPort

	l, err := ldap.DialTLS("tcp", addr, &tls.Config{InsecureSkipVerify: s.cfg.LDAPInsecureSkipVerify})
	if err != nil {
		return nil, err
	}
	defer l.Close()

	if s.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(s.cfg.LDAPTimeoutSec) * time.Second)
	}

	if err := l.Bind(s.cfg.LDAPBindDN, s.cfg.LDAPBindPW); err != nil {
		return nil, err
	}

	filter := "(cn=" + ldap.EscapeFilter(name) + "*)"
	attrs := []string{"displayName", "mail", "givenName", "sn", "mobile"}

	req := ldap.NewSearchRequest(
		s.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0,
		s.cfg.LDAPTimeoutSec,
		false,
		filter,
		attrs,
		nil,
	)

	res, err := l.Search(req)
	if err != nil {
		return nil, err
	}

	out := make([]DirectoryUser, 0, len(res.Entries))
	for _, e := range res.Entries {
		get := func(a string) string { return e.GetAttributeValue(a) }
		out = append(out, DirectoryUser{
			DN:          e.DN,
			DisplayName: get("displayName"),
			Mail:        get("mail"),
			GivenName:   get("givenName"),
			SN:          get("sn"),
			Mobile:      get("mobile"),
		})
	}

	return out, nil
}
