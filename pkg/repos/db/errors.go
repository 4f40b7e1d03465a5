package db

// MySQL server error for duplicate entries on a unique index.
const MySQLErrorCodeDuplicateKey = 1062
