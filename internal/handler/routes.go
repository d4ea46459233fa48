package handler

// APIV0Prefix is the versioned mount point. Every route is also served from the root.
const APIV0Prefix = "/v0"

// HealthMessage is what GET / answers with.
const HealthMessage = "API health check successful"
