package lore

// The table layout doubles as a wire format: the bulk loader writes the same
// four tables directly, so column sets stay stable.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    discord_id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    created_at DATETIME DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS user_aliases (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER REFERENCES users(discord_id),
    alias TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_user_aliases_user ON user_aliases(user_id);

CREATE TABLE IF NOT EXISTS information (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER REFERENCES users(discord_id),
    category TEXT,
    content TEXT NOT NULL,
    created_at DATETIME DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_information_user ON information(user_id);

CREATE TABLE IF NOT EXISTS stories (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT,
    content TEXT NOT NULL,
    homeworld TEXT,
    created_at DATETIME DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_stories_homeworld ON stories(homeworld);
`
