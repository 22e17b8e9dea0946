// ABOUTME: SQLite database schema for corpus storage
// ABOUTME: Creates corpus, chunk, and embedding tables for persistent retrieval
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- Corpora table (one row per ingested corpus)
CREATE TABLE IF NOT EXISTS corpora (
    name TEXT PRIMARY KEY,
    dimension INTEGER NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Chunks table (ordinal chunk IDs scoped to their corpus)
CREATE TABLE IF NOT EXISTS chunks (
    corpus TEXT NOT NULL REFERENCES corpora(name) ON DELETE CASCADE,
    id INTEGER NOT NULL,
    text TEXT NOT NULL,
    metadata TEXT,
    PRIMARY KEY (corpus, id)
);

-- Embeddings table (vector BLOBs, 1:1 with chunks)
CREATE TABLE IF NOT EXISTS embeddings (
    corpus TEXT NOT NULL REFERENCES corpora(name) ON DELETE CASCADE,
    chunk_id INTEGER NOT NULL,
    vector BLOB NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (corpus, chunk_id)
);

CREATE INDEX IF NOT EXISTS idx_chunks_corpus ON chunks(corpus);
CREATE INDEX IF NOT EXISTS idx_embeddings_corpus ON embeddings(corpus);
`
