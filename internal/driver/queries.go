package driver

const (
	FetchStudentsQuery = `
		MATCH (s:Student)
		RETURN s.id AS id,
			s.name AS name,
			s.class_year AS class_year,
			s.bio AS bio,
			s.email AS email,
			s.phone AS phone,
			s.social AS social,
			s.avatar AS avatar
		ORDER BY s.position, s.id
	`

	FetchEventsQuery = `
		MATCH (e:Event)
		OPTIONAL MATCH (e)-[r:HAS_MEDIA]->(m:Media)
		WITH e, r, m
		ORDER BY r.position
		WITH e, collect(m {.*}) AS media
		RETURN e.id AS id,
			e.title AS title,
			e.date AS date,
			e.year AS year,
			e.description AS description,
			media
		ORDER BY e.position, e.id
	`

	FetchGalleryQuery = `
		MATCH (g:GalleryItem)
		RETURN g.bucket AS bucket, g {.*} AS item
		ORDER BY g.bucket, g.position, g.id
	`

	SaveStudentQuery = `
		MERGE (s:Student {id: $id})
		SET s.name = $name,
			s.class_year = $class_year,
			s.bio = $bio,
			s.email = $email,
			s.phone = $phone,
			s.social = $social,
			s.avatar = $avatar,
			s.position = $position
		RETURN s.id AS id
	`

	SaveEventQuery = `
		MERGE (e:Event {id: $id})
		SET e.title = $title,
			e.date = $date,
			e.year = $year,
			e.description = $description,
			e.position = $position
		RETURN e.id AS id
	`

	SaveEventMediaQuery = `
		MATCH (e:Event {id: $event_id})
		MERGE (e)-[r:HAS_MEDIA]->(m:Media {event_id: $event_id, id: $id})
		SET m.type = $type,
			m.title = $title,
			m.description = $description,
			m.url = $url,
			m.thumbnail = $thumbnail,
			m.placeholder = $placeholder,
			r.position = $position
		RETURN m.id AS id
	`

	SaveGalleryItemQuery = `
		MERGE (g:GalleryItem {bucket: $bucket, id: $id})
		SET g.type = $type,
			g.title = $title,
			g.description = $description,
			g.url = $url,
			g.thumbnail = $thumbnail,
			g.placeholder = $placeholder,
			g.position = $position
		RETURN g.id AS id
	`

	ClearDatasetQuery = `
		MATCH (n)
		WHERE n:Student OR n:Event OR n:Media OR n:GalleryItem
		DETACH DELETE n
	`
)

// Gallery buckets as stored on GalleryItem nodes.
const (
	BucketRecent   = "recent"
	BucketFeatured = "featured"
)
