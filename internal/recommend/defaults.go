// Moodify - Mood-Based Media Recommendations
// Copyright 2026 Moodify Authors
// SPDX-License-Identifier: Apache-2.0
// https://github.com/moodifyme/moodify

package recommend

import "github.com/moodifyme/moodify/internal/models"

// DefaultMovies returns the static movie catalog used when TMDB is
// unavailable or returns too few results. Callers receive a fresh copy.
func DefaultMovies() []models.ScreenItem {
	out := make([]models.ScreenItem, len(defaultMovies))
	copy(out, defaultMovies)
	return out
}

// DefaultSeries returns the static web series fallback catalog.
// Callers receive a fresh copy.
func DefaultSeries() []models.ScreenItem {
	out := make([]models.ScreenItem, len(defaultSeries))
	copy(out, defaultSeries)
	return out
}

var defaultMovies = []models.ScreenItem{
	{
		Title:       "The Pursuit of Happyness",
		Year:        "2006",
		Description: "A struggling salesman takes custody of his son as he's poised to begin a life-changing professional career.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/lUqW75zJiHHYJQQQpJJCaNa8p1U.jpg",
		ExternalURL: "https://www.themoviedb.org/movie/1402",
		TrailerURL:  "https://www.youtube.com/results?search_query=The+Pursuit+of+Happyness+2006+trailer",
		Rating:      8.0,
	},
	{
		Title:       "La La Land",
		Year:        "2016",
		Description: "While navigating their careers in Los Angeles, a pianist and an actress fall in love while attempting to reconcile their aspirations for the future.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/uDO8zWDhfWwoFdKS4fzkUJt0Rf0.jpg",
		ExternalURL: "https://www.themoviedb.org/movie/313369",
		TrailerURL:  "https://www.youtube.com/results?search_query=La+La+Land+2016+trailer",
		Rating:      8.0,
	},
	{
		Title:       "Forrest Gump",
		Year:        "1994",
		Description: "The presidencies of Kennedy and Johnson, the events of Vietnam, Watergate, and other historical events unfold from the perspective of an Alabama man with an IQ of 75.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/h5J4W4veyxMXDMjeNxZI46TsHOb.jpg",
		ExternalURL: "https://www.themoviedb.org/movie/13",
		TrailerURL:  "https://www.youtube.com/results?search_query=Forrest+Gump+1994+trailer",
		Rating:      8.4,
	},
	{
		Title:       "The Shawshank Redemption",
		Year:        "1994",
		Description: "Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/q6y0Go1tsGEsmtFryDOJo3dEmqu.jpg",
		ExternalURL: "https://www.themoviedb.org/movie/278",
		TrailerURL:  "https://www.youtube.com/results?search_query=The+Shawshank+Redemption+1994+trailer",
		Rating:      9.2,
	},
	{
		Title:       "Schindler's List",
		Year:        "1993",
		Description: "In German-occupied Poland during World War II, industrialist Oskar Schindler gradually becomes concerned for his Jewish workforce after witnessing their persecution by the Nazis.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/sF1U4EUQS8YHUYjNl3pMGNIQyr0.jpg",
		ExternalURL: "https://www.themoviedb.org/movie/424",
		TrailerURL:  "https://www.youtube.com/results?search_query=Schindler%27s+List+1993+trailer",
		Rating:      8.9,
	},
	{
		Title:       "The Green Mile",
		Year:        "1999",
		Description: "The lives of guards on Death Row are affected by one of their charges: a black man accused of child murder and rape, yet who has a mysterious gift.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/velWPhVMQeQKcxggNEU8YmIo52R.jpg",
		ExternalURL: "https://www.themoviedb.org/movie/497",
		TrailerURL:  "https://www.youtube.com/results?search_query=The+Green+Mile+1999+trailer",
		Rating:      8.5,
	},
	{
		Title:       "The Dark Knight",
		Year:        "2008",
		Description: "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests of his ability to fight injustice.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/qJ2tW6WMUDux911r6m7haRef0WH.jpg",
		ExternalURL: "https://www.themoviedb.org/movie/155",
		TrailerURL:  "https://www.youtube.com/results?search_query=The+Dark+Knight+2008+trailer",
		Rating:      9.0,
	},
	{
		Title:       "Inception",
		Year:        "2010",
		Description: "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/9gk7adHYeDvHkCSEqAvQNLV5Uge.jpg",
		ExternalURL: "https://www.themoviedb.org/movie/27205",
		TrailerURL:  "https://www.youtube.com/results?search_query=Inception+2010+trailer",
		Rating:      8.5,
	},
	{
		Title:       "Mad Max: Fury Road",
		Year:        "2015",
		Description: "In a post-apocalyptic wasteland, a woman rebels against a tyrannical ruler in search for her homeland with the aid of a group of female prisoners, a psychotic worshiper, and a drifter named Max.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/hA2ple9q4qnwxp3hKVNhroW8zQn.jpg",
		ExternalURL: "https://www.themoviedb.org/movie/76341",
		TrailerURL:  "https://www.youtube.com/results?search_query=Mad+Max+Fury+Road+2015+trailer",
		Rating:      8.1,
	},
	{
		Title:       "The Lord of the Rings: The Fellowship of the Ring",
		Year:        "2001",
		Description: "A meek Hobbit from the Shire and eight companions set out on a journey to destroy the powerful One Ring and save Middle-earth from the Dark Lord Sauron.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/6oom5QYQ2yQTMJIbnvbkBL9cHo6.jpg",
		ExternalURL: "https://www.themoviedb.org/movie/120",
		TrailerURL:  "https://www.youtube.com/results?search_query=The+Lord+of+the+Rings%3A+The+Fellowship+of+the+Ring+2001+trailer",
		Rating:      8.8,
	},
	{
		Title:       "Avatar",
		Year:        "2009",
		Description: "A paraplegic Marine dispatched to the moon Pandora on a unique mission becomes torn between following his orders and protecting the world he feels is his home.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/jRXYjXNq0Cs2TcJjLkki24MLp7u.jpg",
		ExternalURL: "https://www.themoviedb.org/movie/19995",
		TrailerURL:  "https://www.youtube.com/results?search_query=Avatar+2009+trailer",
		Rating:      7.5,
	},
	{
		Title:       "The Princess Bride",
		Year:        "1987",
		Description: "While home sick in bed, a young boy's grandfather reads him the story of a farmboy-turned-pirate who encounters numerous obstacles, enemies and allies in his quest to be reunited with his true love.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/dvjqlp2sAhUeFjUOfQDgqwpphHj.jpg",
		ExternalURL: "https://www.themoviedb.org/movie/2493",
		TrailerURL:  "https://www.youtube.com/results?search_query=The+Princess+Bride+1987+trailer",
		Rating:      8.1,
	},
	{
		Title:       "The Godfather",
		Year:        "1972",
		Description: "The aging patriarch of an organized crime dynasty transfers control of his clandestine empire to his reluctant son.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/3bhkrj58Vtu7enYsRolD1fZdja1.jpg",
		ExternalURL: "https://www.themoviedb.org/movie/238",
		TrailerURL:  "https://www.youtube.com/results?search_query=The+Godfather+1972+trailer",
		Rating:      9.2,
	},
	{
		Title:       "Pulp Fiction",
		Year:        "1994",
		Description: "The lives of two mob hitmen, a boxer, a gangster and his wife, and a pair of diner bandits intertwine in four tales of violence and redemption.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/d5iIlFn5s0ImszYzBPb8JPIf36R.jpg",
		ExternalURL: "https://www.themoviedb.org/movie/680",
		TrailerURL:  "https://www.youtube.com/results?search_query=Pulp+Fiction+1994+trailer",
		Rating:      8.9,
	},
	{
		Title:       "The Silence of the Lambs",
		Year:        "1991",
		Description: "A young F.B.I. cadet must receive the help of an incarcerated and manipulative cannibal killer to help catch another serial killer, a madman who skins his victims.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/rplLJ2hPcOQmkFhTqUte0MkEaO2.jpg",
		ExternalURL: "https://www.themoviedb.org/movie/274",
		TrailerURL:  "https://www.youtube.com/results?search_query=The+Silence+of+the+Lambs+1991+trailer",
		Rating:      8.6,
	},
	{
		Title:       "The Grand Budapest Hotel",
		Year:        "2014",
		Description: "The adventures of Gustave H, a legendary concierge at a famous hotel, and Zero Moustafa, the lobby boy who becomes his most trusted friend.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/eWdyYQreja6JGCzqHWXpWHDrrPo.jpg",
		ExternalURL: "https://www.themoviedb.org/movie/120467",
		TrailerURL:  "https://www.youtube.com/results?search_query=The+Grand+Budapest+Hotel+2014+trailer",
		Rating:      8.1,
	},
	{
		Title:       "The Hangover",
		Year:        "2009",
		Description: "Three buddies wake up from a bachelor party in Las Vegas, with no memory of the previous night and the bachelor missing.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/uluhlXubGu1VxU63X9VHCLWDAYP.jpg",
		ExternalURL: "https://www.themoviedb.org/movie/18785",
		TrailerURL:  "https://www.youtube.com/results?search_query=The+Hangover+2009+trailer",
		Rating:      7.8,
	},
	{
		Title:       "Superbad",
		Year:        "2007",
		Description: "Two co-dependent high school seniors are forced to deal with separation anxiety after their plan to stage a booze-soaked party goes awry.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/ek8e8txUyUwd2BNqj6lFAuuNmpC.jpg",
		ExternalURL: "https://www.themoviedb.org/movie/8363",
		TrailerURL:  "https://www.youtube.com/results?search_query=Superbad+2007+trailer",
		Rating:      7.5,
	},
	{
		Title:       "The Matrix",
		Year:        "1999",
		Description: "A computer hacker learns from mysterious rebels about the true nature of his reality and his role in the war against its controllers.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg",
		ExternalURL: "https://www.themoviedb.org/movie/603",
		TrailerURL:  "https://www.youtube.com/results?search_query=The+Matrix+1999+trailer",
		Rating:      8.7,
	},
	{
		Title:       "Interstellar",
		Year:        "2014",
		Description: "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/gEU2QniE6E77NI6lCU6MxlNBvIx.jpg",
		ExternalURL: "https://www.themoviedb.org/movie/157336",
		TrailerURL:  "https://www.youtube.com/results?search_query=Interstellar+2014+trailer",
		Rating:      8.1,
	},
	{
		Title:       "Blade Runner 2049",
		Year:        "2017",
		Description: "A young blade runner's discovery of a long-buried secret leads him to track down former blade runner Rick Deckard, who's been missing for thirty years.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/gajva2L0rPYkEWjzgFlBXCAVBE5.jpg",
		ExternalURL: "https://www.themoviedb.org/movie/335984",
		TrailerURL:  "https://www.youtube.com/results?search_query=Blade+Runner+2049+2017+trailer",
		Rating:      8.0,
	},
	{
		Title:       "The Notebook",
		Year:        "2004",
		Description: "A poor yet passionate young man falls in love with a rich young woman, giving her a sense of freedom, but they are soon separated because of their social differences.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/rNzQyW4f8B8cQeg7Dgj3n6eT5k9.jpg",
		ExternalURL: "https://www.themoviedb.org/movie/11036",
		TrailerURL:  "https://www.youtube.com/results?search_query=The+Notebook+2004+trailer",
		Rating:      7.8,
	},
}

var defaultSeries = []models.ScreenItem{
	{
		Title:       "Friends",
		Year:        "1994",
		Description: "Follows the personal and professional lives of six twenty to thirty-something-year-old friends living in Manhattan.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/f496cm9enuEsZkSPzCwnTESEK5s.jpg",
		ExternalURL: "https://www.themoviedb.org/tv/1668",
		TrailerURL:  "https://www.youtube.com/results?search_query=Friends+TV+show+trailer",
		Rating:      8.4,
	},
	{
		Title:       "The Office",
		Year:        "2005",
		Description: "A mockumentary on a group of typical office workers, where the workday consists of ego clashes, inappropriate behavior, and tedium.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/qWnJzyZhyy74gjpSjIXWmuk0ifX.jpg",
		ExternalURL: "https://www.themoviedb.org/tv/2316",
		TrailerURL:  "https://www.youtube.com/results?search_query=The+Office+TV+show+trailer",
		Rating:      8.5,
	},
	{
		Title:       "Brooklyn Nine-Nine",
		Year:        "2013",
		Description: "Comedy series following the exploits of Det. Jake Peralta and his diverse, lovable colleagues as they police the NYPD's 99th Precinct.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/f53Gpqm4KXBq5PWIHh2zXb4gvwe.jpg",
		ExternalURL: "https://www.themoviedb.org/tv/48891",
		TrailerURL:  "https://www.youtube.com/results?search_query=Brooklyn+Nine-Nine+trailer",
		Rating:      8.2,
	},
	{
		Title:       "This Is Us",
		Year:        "2016",
		Description: "A heartwarming and emotional story about a unique set of triplets, their struggles and their wonderful parents.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/rDlCxDMN1UJxmOEtmiGVDoBLqSv.jpg",
		ExternalURL: "https://www.themoviedb.org/tv/67136",
		TrailerURL:  "https://www.youtube.com/results?search_query=This+Is+Us+trailer",
		Rating:      8.1,
	},
	{
		Title:       "The Crown",
		Year:        "2016",
		Description: "Follows the political rivalries and romance of Queen Elizabeth II's reign and the events that shaped the second half of the twentieth century.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/6nxTO2tDr0oAC5Iw7or5Y3MIjKJ.jpg",
		ExternalURL: "https://www.themoviedb.org/tv/65494",
		TrailerURL:  "https://www.youtube.com/results?search_query=The+Crown+Netflix+trailer",
		Rating:      8.2,
	},
	{
		Title:       "Normal People",
		Year:        "2020",
		Description: "Follows Marianne and Connell, from different backgrounds but the same small town in Ireland, as they weave in and out of each other's romantic lives.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/5zDBVLZSW7Vf4WwbJbseFwgo3jd.jpg",
		ExternalURL: "https://www.themoviedb.org/tv/95794",
		TrailerURL:  "https://www.youtube.com/results?search_query=Normal+People+Hulu+trailer",
		Rating:      8.0,
	},
	{
		Title:       "Breaking Bad",
		Year:        "2008",
		Description: "A high school chemistry teacher diagnosed with inoperable lung cancer turns to manufacturing and selling methamphetamine in order to secure his family's future.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/ggFHVNu6YYI5L9pCfOacjizRGt.jpg",
		ExternalURL: "https://www.themoviedb.org/tv/1396",
		TrailerURL:  "https://www.youtube.com/results?search_query=Breaking+Bad+trailer",
		Rating:      9.2,
	},
	{
		Title:       "The Boys",
		Year:        "2019",
		Description: "A group of vigilantes set out to take down corrupt superheroes who abuse their superpowers.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/dzOxNbbz1liFzHU1IPvdgUR647b.jpg",
		ExternalURL: "https://www.themoviedb.org/tv/76479",
		TrailerURL:  "https://www.youtube.com/results?search_query=The+Boys+Amazon+trailer",
		Rating:      8.4,
	},
	{
		Title:       "Peaky Blinders",
		Year:        "2013",
		Description: "A gangster family epic set in 1919 Birmingham, England; centered on a gang who sew razor blades in the peaks of their caps, and their fierce boss Tommy Shelby.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/bGZn5RVzMMXge2WqqlKibqMZH6q.jpg",
		ExternalURL: "https://www.themoviedb.org/tv/60574",
		TrailerURL:  "https://www.youtube.com/results?search_query=Peaky+Blinders+trailer",
		Rating:      8.5,
	},
	{
		Title:       "Stranger Things",
		Year:        "2016",
		Description: "When a young boy disappears, his mother, a police chief, and his friends must confront terrifying supernatural forces in order to get him back.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/x2LSRK2Cm7MZhjluni1msVJ3wDF.jpg",
		ExternalURL: "https://www.themoviedb.org/tv/66732",
		TrailerURL:  "https://www.youtube.com/results?search_query=Stranger+Things+trailer",
		Rating:      8.6,
	},
	{
		Title:       "The Mandalorian",
		Year:        "2019",
		Description: "The travels of a lone bounty hunter in the outer reaches of the galaxy, far from the authority of the New Republic.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/sWgBv7LV2PRoQgkxwlibdGXKz1S.jpg",
		ExternalURL: "https://www.themoviedb.org/tv/82856",
		TrailerURL:  "https://www.youtube.com/results?search_query=The+Mandalorian+trailer",
		Rating:      8.5,
	},
	{
		Title:       "Black Mirror",
		Year:        "2011",
		Description: "An anthology series exploring a twisted, high-tech multiverse where humanity's greatest innovations and darkest instincts collide.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/4n1R4CXstrYrAVKrn8ScKCkk8ka.jpg",
		ExternalURL: "https://www.themoviedb.org/tv/42009",
		TrailerURL:  "https://www.youtube.com/results?search_query=Black+Mirror+trailer",
		Rating:      8.3,
	},
	{
		Title:       "Sherlock",
		Year:        "2010",
		Description: "A modern update finds the famous sleuth and his doctor partner solving crime in 21st century London.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/7WTsnHkbA0FaG6R9twfFde0I9hl.jpg",
		ExternalURL: "https://www.themoviedb.org/tv/19885",
		TrailerURL:  "https://www.youtube.com/results?search_query=Sherlock+BBC+trailer",
		Rating:      8.5,
	},
	{
		Title:       "True Detective",
		Year:        "2014",
		Description: "Seasonal anthology series in which police investigations unearth the personal and professional secrets of those involved, both within and outside the law.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/xAKMTPYJYLDxTrFOn0rs9X0prGz.jpg",
		ExternalURL: "https://www.themoviedb.org/tv/46648",
		TrailerURL:  "https://www.youtube.com/results?search_query=True+Detective+HBO+trailer",
		Rating:      8.2,
	},
	{
		Title:       "Mindhunter",
		Year:        "2017",
		Description: "In the late 1970s, two FBI agents expand criminal science by delving into the psychology of murder and getting uneasily close to all-too-real monsters.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/fbKE87mojpIETWepSbD5UIcjHYS.jpg",
		ExternalURL: "https://www.themoviedb.org/tv/67744",
		TrailerURL:  "https://www.youtube.com/results?search_query=Mindhunter+Netflix+trailer",
		Rating:      8.1,
	},
	{
		Title:       "Game of Thrones",
		Year:        "2011",
		Description: "Nine noble families fight for control over the lands of Westeros, while an ancient enemy returns after being dormant for millennia.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/u3bZgnGQ9T01sWNhyveQz0wH0Hl.jpg",
		ExternalURL: "https://www.themoviedb.org/tv/1399",
		TrailerURL:  "https://www.youtube.com/results?search_query=Game+of+Thrones+trailer",
		Rating:      8.3,
	},
	{
		Title:       "The Witcher",
		Year:        "2019",
		Description: "Geralt of Rivia, a solitary monster hunter, struggles to find his place in a world where people often prove more wicked than beasts.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/zrPpUlehQaBf8YX2NrVrKK8IEpf.jpg",
		ExternalURL: "https://www.themoviedb.org/tv/71912",
		TrailerURL:  "https://www.youtube.com/results?search_query=The+Witcher+Netflix+trailer",
		Rating:      8.1,
	},
	{
		Title:       "Vikings",
		Year:        "2013",
		Description: "Vikings transports us to the brutal and mysterious world of Ragnar Lothbrok, a Viking warrior and farmer who yearns to explore - and raid - the distant shores across the ocean.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/mBDlsOhNOV1MkNii81aT14EYQ4S.jpg",
		ExternalURL: "https://www.themoviedb.org/tv/44217",
		TrailerURL:  "https://www.youtube.com/results?search_query=Vikings+History+Channel+trailer",
		Rating:      8.0,
	},
	{
		Title:       "Ted Lasso",
		Year:        "2020",
		Description: "American college football coach Ted Lasso heads to London to manage AFC Richmond, a struggling English Premier League football team.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/oX7QdfiQEbyvIvpKgJHRCgbrLdK.jpg",
		ExternalURL: "https://www.themoviedb.org/tv/97546",
		TrailerURL:  "https://www.youtube.com/results?search_query=Ted+Lasso+Apple+TV+trailer",
		Rating:      8.5,
	},
	{
		Title:       "The Good Place",
		Year:        "2016",
		Description: "Four people and their otherworldly frienemy struggle in the afterlife to define what it means to be good.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/p7uJ7zJ9k0v7ob1tBZMJYvU98aJ.jpg",
		ExternalURL: "https://www.themoviedb.org/tv/66573",
		TrailerURL:  "https://www.youtube.com/results?search_query=The+Good+Place+NBC+trailer",
		Rating:      8.2,
	},
	{
		Title:       "Schitt's Creek",
		Year:        "2015",
		Description: "When rich video-store magnate Johnny Rose and his family suddenly find themselves broke, they are forced to leave their pampered lives to regroup in Schitt's Creek.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/qrI0UeLOXn7dcQe1J2cDQZ4bCOj.jpg",
		ExternalURL: "https://www.themoviedb.org/tv/61664",
		TrailerURL:  "https://www.youtube.com/results?search_query=Schitt%27s+Creek+trailer",
		Rating:      8.1,
	},
	{
		Title:       "Bridgerton",
		Year:        "2020",
		Description: "Wealth, lust, and betrayal set against the backdrop of Regency-era England, seen through the eyes of the powerful Bridgerton family.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/o4MoP6qVBhAJknMjW6Vz1NUcuJZ.jpg",
		ExternalURL: "https://www.themoviedb.org/tv/91239",
		TrailerURL:  "https://www.youtube.com/results?search_query=Bridgerton+Netflix+trailer",
		Rating:      7.8,
	},
	{
		Title:       "Modern Love",
		Year:        "2019",
		Description: "An anthology series that explores love in all of its complicated and beautiful forms, as well as its effects on the human connection.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/bdGipIhCWwzTgErOqHruuJ56nEO.jpg",
		ExternalURL: "https://www.themoviedb.org/tv/89351",
		TrailerURL:  "https://www.youtube.com/results?search_query=Modern+Love+Amazon+trailer",
		Rating:      7.8,
	},
	{
		Title:       "Jane the Virgin",
		Year:        "2014",
		Description: "A young, devout Catholic woman discovers that she was accidentally artificially inseminated.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/ql8t0HGhSPeiysiQeNh1s7UgrG.jpg",
		ExternalURL: "https://www.themoviedb.org/tv/61418",
		TrailerURL:  "https://www.youtube.com/results?search_query=Jane+the+Virgin+trailer",
		Rating:      7.7,
	},
}
