// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/linuxfoundation/lfx-v2-roster-service/internal/api"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/infrastructure/auth"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/infrastructure/mock"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/render"
	usecase "github.com/linuxfoundation/lfx-v2-roster-service/internal/service"
	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	goa "goa.design/goa/v3/pkg"
	"goa.design/goa/v3/security"
)

func newTestService() *rosterSvcsrvc {
	svc := NewRosterSvc(usecase.NewMemberSearch(model.DefaultRoster()), render.HTML{}, mock.NewMockAuthService())
	return svc.(*rosterSvcsrvc)
}

func TestRosterSvcsrvc_JWTAuth(t *testing.T) {
	tests := []struct {
		name          string
		principal     string
		expectedError bool
	}{
		{
			name:      "successful JWT auth with mock principal",
			principal: "test-user-123",
		},
		{
			name:          "mock principal not configured",
			principal:     "",
			expectedError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("JWT_AUTH_DISABLED_MOCK_LOCAL_PRINCIPAL", tc.principal)
			svc := newTestService()

			resultCtx, err := svc.JWTAuth(context.Background(), "mock-token", &security.JWTScheme{})

			if tc.expectedError {
				require.Error(t, err)
				var serviceErr *goa.ServiceError
				require.True(t, stderrors.As(err, &serviceErr))
				assert.Equal(t, api.ErrUnauthorized, serviceErr.Name)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.principal, resultCtx.Value(constants.PrincipalContextID))
		})
	}
}

func TestRosterSvcsrvc_JWTAuthAnonymous(t *testing.T) {
	svc := NewRosterSvc(usecase.NewMemberSearch(model.DefaultRoster()), render.HTML{}, auth.AnonymousAuth{}).(*rosterSvcsrvc)

	ctx, err := svc.JWTAuth(context.Background(), "", &security.JWTScheme{})

	require.NoError(t, err)
	assert.Equal(t, constants.AnonymousPrincipal, ctx.Value(constants.PrincipalContextID))
}

func TestRosterSvcsrvc_SearchMember(t *testing.T) {
	tests := []struct {
		name              string
		query             string
		expectedFound     bool
		expectedQuery     string
		expectedCodename  string
		expectedCodeSpans []*api.Span
	}{
		{
			name:              "codename in lower case",
			query:             "ironwall",
			expectedFound:     true,
			expectedQuery:     "ironwall",
			expectedCodename:  "IronWall",
			expectedCodeSpans: []*api.Span{{Start: 0, End: 8}},
		},
		{
			name:              "name with padding",
			query:             "  AGENT ALPHA ",
			expectedFound:     true,
			expectedQuery:     "AGENT ALPHA",
			expectedCodename:  "EagleEye",
			expectedCodeSpans: []*api.Span{},
		},
		{
			name:          "partial codename",
			query:         "Iron",
			expectedFound: false,
			expectedQuery: "Iron",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService()

			res, err := svc.SearchMember(context.Background(), &api.QueryPayload{Version: "1", Q: tc.query})

			require.NoError(t, err)
			assert.Equal(t, tc.expectedFound, res.Found)
			assert.Equal(t, tc.expectedQuery, res.Query)
			if !tc.expectedFound {
				assert.Nil(t, res.Member)
				require.NotNil(t, res.Message)
				assert.Equal(t, `"`+tc.expectedQuery+`" does not match any registered member.`, *res.Message)
				return
			}
			require.NotNil(t, res.Member)
			assert.Equal(t, tc.expectedCodename, res.Member.Codename)
			assert.Equal(t, tc.expectedCodeSpans, res.Highlights.Codename)
		})
	}
}

func TestRosterSvcsrvc_MemberCard(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	card, err := svc.MemberCard(ctx, &api.QueryPayload{Q: "eagleeye"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(card), `<div class="member-card">`))
	assert.Contains(t, string(card), `<span class="highlight">EagleEye</span>`)

	card, err = svc.MemberCard(ctx, &api.QueryPayload{Q: "<b>Nobody</b>"})
	require.NoError(t, err)
	assert.Contains(t, string(card), "error-card")
	assert.Contains(t, string(card), "&lt;b&gt;Nobody&lt;/b&gt;")
}

func TestRosterSvcsrvc_RosterSource(t *testing.T) {
	res, err := newTestService().RosterSource(context.Background(), &api.SourcePayload{})

	require.NoError(t, err)
	assert.Equal(t, &api.SourceResult{Source: model.DefaultSourceName, Count: 2}, res)
}

func TestRosterSvcsrvc_Probes(t *testing.T) {
	svc := newTestService()

	ready, err := svc.Readyz(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "OK\n", string(ready))

	live, err := svc.Livez(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "OK\n", string(live))

	_, err = (&rosterSvcsrvc{}).Readyz(context.Background())
	assert.Error(t, err)
}
