package domain

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Fixed ids for the seeded dataset. New entities get uuid-based ids; the
// seed keeps stable ids so demo logins and references survive a reseed.
const (
	RoleIDOwner     = "role-owner"
	RoleIDDeveloper = "role-dev"
	RoleIDAdmin     = "role-admin"
	RoleIDSecondMod = "role-smod"
	RoleIDMod       = "role-mod"
	RoleIDUser      = "role-user"
)

// SeedForum builds the default dataset written on first run or whenever the
// stored document is missing or corrupt. Demo passwords are bcrypt-hashed at
// seed time; plaintext never reaches the store.
func SeedForum(now time.Time) *Forum {
	roles := []Role{
		{ID: RoleIDOwner, Name: "OWNER", Style: "text-red-500 font-black", Permissions: []Permission{
			PermDeleteAnyPost, PermDeleteAnyThread, PermCreateInfiniteChannels, PermAssignRoles, PermManageRoles,
		}},
		{ID: RoleIDDeveloper, Name: "DEVELOPER", Style: "text-blue-400", Permissions: []Permission{
			PermDeleteAnyPost, PermDeleteAnyThread, PermCreateInfiniteChannels,
		}},
		{ID: RoleIDAdmin, Name: "ADMIN", Style: "text-red-400", Permissions: []Permission{
			PermDeleteAnyPost, PermDeleteAnyThread, PermCreateInfiniteChannels,
		}},
		{ID: RoleIDSecondMod, Name: "SECOND MOD", Style: "text-indigo-400", Permissions: []Permission{PermDeleteAnyPost}},
		{ID: RoleIDMod, Name: "MOD", Style: "text-purple-400", Permissions: []Permission{PermDeleteAnyPost}},
		{ID: RoleIDUser, Name: "USER", Style: "text-yellow-400", Permissions: []Permission{}},
	}

	users := []User{
		seedUser("user-owner", "niko.is.here", "SIgmaPass123", RoleIDOwner, now.Add(-10*24*time.Hour)),
		seedUser("user-dev", "developer", "password123", RoleIDDeveloper, now.Add(-5*24*time.Hour)),
		seedUser("user-admin", "admin", "password123", RoleIDAdmin, now.Add(-5*24*time.Hour)),
		seedUser("user-smod", "secondmod", "password123", RoleIDSecondMod, now.Add(-2*24*time.Hour)),
		seedUser("user-mod", "mod", "password123", RoleIDMod, now.Add(-2*24*time.Hour)),
		seedUser("user-dummy1", "dummyUser1", "password123", RoleIDUser, now.Add(-30*time.Minute)),
		seedUser("user-dummy2", "dummyUser2", "password123", RoleIDUser, now.Add(-15*time.Minute)),
	}

	channels := []Channel{
		{
			ID:          "chan-1",
			Name:        "general",
			Description: "General discussion, news, and everything that doesn't fit elsewhere.",
			OwnerID:     "user-admin",
			IsPrivate:   false,
			Threads: []Thread{
				{
					ID:           "thread-1",
					ChannelID:    "chan-1",
					Title:        "Welcome to ThreadIRC!",
					LastActivity: now.Add(-5 * time.Minute),
					OriginalPost: Post{
						ID:     "post-1",
						Author: Author{ID: "user-admin", Username: "admin"},
						Content: "This is a new forum. Feel free to create an account and start posting.\n\n" +
							"Rules:\n1. Be excellent to each other.\n2. No illegal content.\n3. Admins have the final say.",
						Timestamp: now.Add(-10 * time.Minute),
						Votes:     map[string]VoteDirection{"user-admin": VoteUp, "user-mod": VoteUp},
					},
					Comments: []Post{
						{
							ID:        "post-2",
							Author:    Author{ID: "user-mod", Username: "mod"},
							Content:   "Glad to be here!",
							Timestamp: now.Add(-5 * time.Minute),
							Votes:     map[string]VoteDirection{"user-mod": VoteUp},
						},
					},
				},
			},
		},
		{
			ID:          "chan-2",
			Name:        "tech",
			Description: "Hardware, software, and everything in between.",
			OwnerID:     "user-admin",
			IsPrivate:   false,
			Threads:     []Thread{},
		},
	}

	return &Forum{Channels: channels, Users: users, Roles: roles}
}

func seedUser(id, username, password, roleID string, createdAt time.Time) User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on absurd cost values; the seed uses the default.
		panic(err)
	}
	return User{
		ID:           id,
		Username:     username,
		PasswordHash: string(hash),
		RoleID:       roleID,
		CreatedAt:    createdAt,
	}
}
