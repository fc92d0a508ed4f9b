package mockapi

import (
	"flickdeck/internal/flicks"
)

func strp(s string) *string     { return &s }
func intp(i int) *int           { return &i }
func floatp(f float64) *float64 { return &f }

// SeedMovies is the development catalog. A few entries deliberately
// miss runtime, metascore, rating, or poster so the placeholder and
// nulls-last paths get exercised.
func SeedMovies() []flicks.Movie {
	return []flicks.Movie{
		{
			ID: 1, Name: "The Shawshank Redemption",
			Rating: floatp(9.3), Runtime: intp(142),
			Genre: strp("Drama"), Metascore: floatp(82),
			Plot:      strp("Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency."),
			Directors: strp("Frank Darabont"), Stars: strp("Tim Robbins, Morgan Freeman, Bob Gunton"),
			Votes: strp("2,804,371"), Gross: strp("$28.34M"),
			PosterURL: strp("https://posters.flickdeck.dev/shawshank-redemption.jpg"),
		},
		{
			ID: 2, Name: "The Godfather",
			Rating: floatp(9.2), Runtime: intp(175),
			Genre: strp("Crime, Drama"), Metascore: floatp(100),
			Plot:      strp("The aging patriarch of an organized crime dynasty transfers control of his empire to his reluctant youngest son."),
			Directors: strp("Francis Ford Coppola"), Stars: strp("Marlon Brando, Al Pacino, James Caan"),
			Votes: strp("1,951,034"), Gross: strp("$134.97M"),
			PosterURL: strp("https://posters.flickdeck.dev/the-godfather.jpg"),
		},
		{
			ID: 3, Name: "The Dark Knight",
			Rating: floatp(9.0), Runtime: intp(152),
			Genre: strp("Action, Crime, Drama"), Metascore: floatp(84),
			Plot:      strp("Batman must accept one of the greatest psychological and physical tests when the Joker wreaks havoc on Gotham."),
			Directors: strp("Christopher Nolan"), Stars: strp("Christian Bale, Heath Ledger, Aaron Eckhart"),
			Votes: strp("2,778,509"), Gross: strp("$534.86M"),
			PosterURL: strp("https://posters.flickdeck.dev/the-dark-knight.jpg"),
		},
		{
			ID: 4, Name: "Inception",
			Rating: floatp(8.8), Runtime: intp(148),
			Genre: strp("Action, Sci-Fi, Thriller"), Metascore: floatp(74),
			Plot:      strp("A thief who steals corporate secrets through dream-sharing technology is given the inverse task of planting an idea."),
			Directors: strp("Christopher Nolan"), Stars: strp("Leonardo DiCaprio, Joseph Gordon-Levitt, Elliot Page"),
			Votes: strp("2,465,998"), Gross: strp("$292.58M"),
			PosterURL: strp("https://posters.flickdeck.dev/inception.jpg"),
		},
		{
			ID: 5, Name: "The Matrix",
			Rating: floatp(8.7), Runtime: intp(136),
			Genre: strp("Action, Sci-Fi"), Metascore: floatp(73),
			Plot:      strp("A computer hacker learns the true nature of his reality and his role in the war against its controllers."),
			Directors: strp("Lana Wachowski, Lilly Wachowski"), Stars: strp("Keanu Reeves, Laurence Fishburne, Carrie-Anne Moss"),
			Votes: strp("2,029,312"), Gross: strp("$171.48M"),
			PosterURL: strp("https://posters.flickdeck.dev/the-matrix.jpg"),
		},
		{
			ID: 6, Name: "Interstellar",
			Rating: floatp(8.7), Runtime: intp(169),
			Genre: strp("Adventure, Drama, Sci-Fi"), Metascore: floatp(74),
			Plot:      strp("A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival."),
			Directors: strp("Christopher Nolan"), Stars: strp("Matthew McConaughey, Anne Hathaway, Jessica Chastain"),
			Votes: strp("2,034,967"), Gross: strp("$188.02M"),
			PosterURL: strp("https://posters.flickdeck.dev/interstellar.jpg"),
		},
		{
			ID: 7, Name: "Parasite",
			Rating: floatp(8.5), Runtime: intp(132),
			Genre: strp("Drama, Thriller"), Metascore: floatp(96),
			Plot:      strp("Greed and class discrimination threaten the newly formed symbiotic relationship between a wealthy family and a destitute clan."),
			Directors: strp("Bong Joon Ho"), Stars: strp("Song Kang-ho, Lee Sun-kyun, Cho Yeo-jeong"),
			Votes: strp("903,321"), Gross: strp("$53.37M"),
			PosterURL: strp("https://posters.flickdeck.dev/parasite.jpg"),
		},
		{
			ID: 8, Name: "Alien",
			Rating: floatp(8.5), Runtime: intp(117),
			Genre: strp("Horror, Sci-Fi"), Metascore: floatp(89),
			Plot:      strp("The crew of a commercial spacecraft encounters a deadly lifeform after investigating an unknown transmission."),
			Directors: strp("Ridley Scott"), Stars: strp("Sigourney Weaver, Tom Skerritt, John Hurt"),
			Votes: strp("955,742"), Gross: strp("$78.90M"),
			PosterURL: strp("https://posters.flickdeck.dev/alien.jpg"),
		},
		{
			ID: 9, Name: "The Shining",
			Rating: floatp(8.4), Runtime: intp(146),
			Genre: strp("Drama, Horror"), Metascore: floatp(66),
			Plot:      strp("A family heads to an isolated hotel for the winter where a sinister presence influences the father into violence."),
			Directors: strp("Stanley Kubrick"), Stars: strp("Jack Nicholson, Shelley Duvall, Danny Lloyd"),
			Votes: strp("1,093,301"), Gross: strp("$44.02M"),
			PosterURL: strp("https://posters.flickdeck.dev/the-shining.jpg"),
		},
		{
			ID: 10, Name: "Spirited Away",
			Rating: floatp(8.6), Runtime: intp(125),
			Genre: strp("Animation, Adventure, Family"), Metascore: floatp(96),
			Plot:      strp("During her family's move to the suburbs, a sullen girl wanders into a world ruled by gods, witches, and spirits."),
			Directors: strp("Hayao Miyazaki"), Stars: strp("Daveigh Chase, Suzanne Pleshette, Miyu Irino"),
			Votes: strp("831,307"), Gross: strp("$10.06M"),
			PosterURL: strp("https://posters.flickdeck.dev/spirited-away.jpg"),
		},
		{
			ID: 11, Name: "Spider-Man: Into the Spider-Verse",
			Rating: floatp(8.4), Runtime: intp(117),
			Genre: strp("Animation, Action, Adventure"), Metascore: floatp(87),
			Plot:      strp("Teen Miles Morales becomes the Spider-Man of his universe and must join five spider-powered individuals from other dimensions."),
			Directors: strp("Bob Persichetti, Peter Ramsey, Rodney Rothman"), Stars: strp("Shameik Moore, Jake Johnson, Hailee Steinfeld"),
			Votes: strp("617,716"), Gross: strp("$190.24M"),
			PosterURL: strp("https://posters.flickdeck.dev/into-the-spider-verse.jpg"),
		},
		{
			ID: 12, Name: "Get Out",
			Rating: floatp(7.8), Runtime: intp(104),
			Genre: strp("Horror, Mystery, Thriller"), Metascore: floatp(85),
			Plot:      strp("A young African-American visits his white girlfriend's parents for the weekend, where unease gives way to something sinister."),
			Directors: strp("Jordan Peele"), Stars: strp("Daniel Kaluuya, Allison Williams, Bradley Whitford"),
			Votes: strp("686,784"), Gross: strp("$176.04M"),
			PosterURL: strp("https://posters.flickdeck.dev/get-out.jpg"),
		},
		{
			ID: 13, Name: "La La Land",
			Rating: floatp(8.0), Runtime: intp(128),
			Genre: strp("Comedy, Drama, Romance"), Metascore: floatp(94),
			Plot:      strp("While navigating their careers in Los Angeles, a pianist and an actress fall in love while attempting to reconcile their aspirations."),
			Directors: strp("Damien Chazelle"), Stars: strp("Ryan Gosling, Emma Stone, Rosemarie DeWitt"),
			Votes: strp("631,954"), Gross: strp("$151.10M"),
			PosterURL: strp("https://posters.flickdeck.dev/la-la-land.jpg"),
		},
		{
			ID: 14, Name: "The Grand Budapest Hotel",
			Rating: floatp(8.1), Runtime: intp(99),
			Genre: strp("Adventure, Comedy, Crime"), Metascore: floatp(88),
			Plot:      strp("A writer encounters the owner of an aging high-class hotel, who tells him of his early years as a lobby boy."),
			Directors: strp("Wes Anderson"), Stars: strp("Ralph Fiennes, F. Murray Abraham, Mathieu Amalric"),
			Votes: strp("875,707"), Gross: strp("$59.10M"),
			PosterURL: strp("https://posters.flickdeck.dev/grand-budapest-hotel.jpg"),
		},
		{
			ID: 15, Name: "Superbad",
			Rating: floatp(7.6), Runtime: intp(113),
			Genre: strp("Comedy"), Metascore: floatp(76),
			Plot:      strp("Two co-dependent high school seniors are forced to deal with separation anxiety after a party plan goes awry."),
			Directors: strp("Greg Mottola"), Stars: strp("Michael Cera, Jonah Hill, Christopher Mintz-Plasse"),
			Votes: strp("659,120"), Gross: strp("$121.46M"),
			PosterURL: strp("https://posters.flickdeck.dev/superbad.jpg"),
		},
		{
			ID: 16, Name: "Titanic",
			Rating: floatp(7.9), Runtime: intp(194),
			Genre: strp("Drama, Romance"), Metascore: floatp(75),
			Plot:      strp("A seventeen-year-old aristocrat falls in love with a kind but poor artist aboard the luxurious, ill-fated R.M.S. Titanic."),
			Directors: strp("James Cameron"), Stars: strp("Leonardo DiCaprio, Kate Winslet, Billy Zane"),
			Votes: strp("1,264,913"), Gross: strp("$659.33M"),
			PosterURL: strp("https://posters.flickdeck.dev/titanic.jpg"),
		},
		{
			ID: 17, Name: "Casablanca",
			Rating: floatp(8.5), Runtime: intp(102),
			Genre: strp("Drama, Romance, War"), Metascore: floatp(100),
			Plot:      strp("A cynical expatriate cafe owner struggles to decide whether or not to help his former lover and her fugitive husband."),
			Directors: strp("Michael Curtiz"), Stars: strp("Humphrey Bogart, Ingrid Bergman, Paul Henreid"),
			Votes: strp("594,909"), Gross: strp("$1.02M"),
			PosterURL: strp("https://posters.flickdeck.dev/casablanca.jpg"),
		},
		{
			ID: 18, Name: "Before Sunrise",
			Rating: floatp(8.1), Runtime: intp(101),
			Genre: strp("Drama, Romance"), Metascore: floatp(77),
			Plot:      strp("A young man and woman meet on a train in Europe and wind up spending one evening together in Vienna."),
			Directors: strp("Richard Linklater"), Stars: strp("Ethan Hawke, Julie Delpy, Andrea Eckert"),
			Votes: strp("321,824"), Gross: nil,
			PosterURL: strp("https://posters.flickdeck.dev/before-sunrise.jpg"),
		},
		{
			ID: 19, Name: "Mad Max: Fury Road",
			Rating: floatp(8.1), Runtime: intp(120),
			Genre: strp("Action, Adventure, Sci-Fi"), Metascore: floatp(90),
			Plot:      strp("In a post-apocalyptic wasteland, Furiosa rebels against a tyrannical ruler in search of her homeland."),
			Directors: strp("George Miller"), Stars: strp("Tom Hardy, Charlize Theron, Nicholas Hoult"),
			Votes: strp("1,065,764"), Gross: strp("$154.06M"),
			PosterURL: strp("https://posters.flickdeck.dev/mad-max-fury-road.jpg"),
		},
		{
			ID: 20, Name: "Die Hard",
			Rating: floatp(8.2), Runtime: intp(132),
			Genre: strp("Action, Thriller"), Metascore: floatp(72),
			Plot:      strp("A New York City police officer tries to save his estranged wife and others taken hostage during a Christmas party."),
			Directors: strp("John McTiernan"), Stars: strp("Bruce Willis, Alan Rickman, Bonnie Bedelia"),
			Votes: strp("918,834"), Gross: strp("$83.01M"),
			PosterURL: strp("https://posters.flickdeck.dev/die-hard.jpg"),
		},
		{
			ID: 21, Name: "The Silence of the Lambs",
			Rating: floatp(8.6), Runtime: intp(118),
			Genre: strp("Crime, Drama, Thriller"), Metascore: floatp(85),
			Plot:      strp("A young FBI cadet must receive the help of an incarcerated and manipulative cannibal killer to catch another serial killer."),
			Directors: strp("Jonathan Demme"), Stars: strp("Jodie Foster, Anthony Hopkins, Scott Glenn"),
			Votes: strp("1,534,039"), Gross: strp("$130.74M"),
			PosterURL: strp("https://posters.flickdeck.dev/silence-of-the-lambs.jpg"),
		},
		{
			ID: 22, Name: "Gone Girl",
			Rating: floatp(8.1), Runtime: intp(149),
			Genre: strp("Drama, Mystery, Thriller"), Metascore: floatp(79),
			Plot:      strp("With his wife's disappearance having become the focus of an intense media circus, a man sees the spotlight turned on him."),
			Directors: strp("David Fincher"), Stars: strp("Ben Affleck, Rosamund Pike, Neil Patrick Harris"),
			Votes: strp("1,076,752"), Gross: strp("$167.77M"),
			PosterURL: strp("https://posters.flickdeck.dev/gone-girl.jpg"),
		},
		{
			ID: 23, Name: "Hereditary",
			Rating: floatp(7.3), Runtime: intp(127),
			Genre: strp("Drama, Horror, Mystery"), Metascore: floatp(87),
			Plot:      strp("A grieving family is haunted by tragic and disturbing occurrences after the death of their secretive grandmother."),
			Directors: strp("Ari Aster"), Stars: strp("Toni Collette, Milly Shapiro, Gabriel Byrne"),
			Votes: strp("377,611"), Gross: strp("$44.07M"),
			PosterURL: strp("https://posters.flickdeck.dev/hereditary.jpg"),
		},
		{
			ID: 24, Name: "Toy Story",
			Rating: floatp(8.3), Runtime: intp(81),
			Genre: strp("Animation, Adventure, Comedy"), Metascore: floatp(96),
			Plot:      strp("A cowboy doll is profoundly threatened and jealous when a new spaceman action figure supplants him as top toy."),
			Directors: strp("John Lasseter"), Stars: strp("Tom Hanks, Tim Allen, Don Rickles"),
			Votes: strp("1,062,089"), Gross: strp("$191.80M"),
			PosterURL: strp("https://posters.flickdeck.dev/toy-story.jpg"),
		},
		{
			ID: 25, Name: "WALL·E",
			Rating: floatp(8.4), Runtime: intp(98),
			Genre: strp("Animation, Adventure, Family"), Metascore: floatp(95),
			Plot:      strp("A robot left to clean an abandoned Earth accidentally embarks on a space journey that decides the fate of mankind."),
			Directors: strp("Andrew Stanton"), Stars: strp("Ben Burtt, Elissa Knight, Jeff Garlin"),
			Votes: strp("1,189,606"), Gross: strp("$223.81M"),
			PosterURL: strp("https://posters.flickdeck.dev/wall-e.jpg"),
		},
		{
			ID: 26, Name: "Blade Runner 2049",
			Rating: floatp(8.0), Runtime: intp(164),
			Genre: strp("Action, Drama, Sci-Fi"), Metascore: floatp(81),
			Plot:      strp("A young blade runner's discovery of a long-buried secret leads him to track down former blade runner Rick Deckard."),
			Directors: strp("Denis Villeneuve"), Stars: strp("Harrison Ford, Ryan Gosling, Ana de Armas"),
			Votes: strp("635,094"), Gross: strp("$92.05M"),
			PosterURL: strp("https://posters.flickdeck.dev/blade-runner-2049.jpg"),
		},
		{
			ID: 27, Name: "Arrival",
			Rating: floatp(7.9), Runtime: intp(116),
			Genre: strp("Drama, Sci-Fi"), Metascore: floatp(81),
			Plot:      strp("A linguist works with the military to communicate with alien lifeforms after twelve mysterious spacecraft appear."),
			Directors: strp("Denis Villeneuve"), Stars: strp("Amy Adams, Jeremy Renner, Forest Whitaker"),
			Votes: strp("768,486"), Gross: strp("$100.55M"),
			PosterURL: strp("https://posters.flickdeck.dev/arrival.jpg"),
		},
		{
			ID: 28, Name: "The Notebook",
			Rating: floatp(7.8), Runtime: intp(123),
			Genre: strp("Drama, Romance"), Metascore: floatp(53),
			Plot:      strp("A poor yet passionate young man falls in love with a rich young woman, giving her a sense of freedom."),
			Directors: strp("Nick Cassavetes"), Stars: strp("Gena Rowlands, James Garner, Rachel McAdams"),
			Votes: strp("617,561"), Gross: strp("$81.00M"),
			PosterURL: strp("https://posters.flickdeck.dev/the-notebook.jpg"),
		},
		{
			ID: 29, Name: "Monty Python and the Holy Grail",
			Rating: floatp(8.2), Runtime: intp(91),
			Genre: strp("Adventure, Comedy, Fantasy"), Metascore: floatp(91),
			Plot:      strp("King Arthur and his Knights of the Round Table embark on a surreal, low-budget search for the Holy Grail."),
			Directors: strp("Terry Gilliam, Terry Jones"), Stars: strp("Graham Chapman, John Cleese, Eric Idle"),
			Votes: strp("557,921"), Gross: strp("$1.23M"),
			PosterURL: strp("https://posters.flickdeck.dev/holy-grail.jpg"),
		},
		{
			ID: 30, Name: "A Quiet Place",
			Rating: floatp(7.5), Runtime: intp(90),
			Genre: strp("Drama, Horror, Sci-Fi"), Metascore: floatp(82),
			Plot:      strp("In a post-apocalyptic world, a family is forced to live in silence while hiding from monsters that hunt by sound."),
			Directors: strp("John Krasinski"), Stars: strp("Emily Blunt, John Krasinski, Millicent Simmonds"),
			Votes: strp("550,098"), Gross: strp("$188.02M"),
			PosterURL: strp("https://posters.flickdeck.dev/a-quiet-place.jpg"),
		},
		{
			ID: 31, Name: "Coherence",
			Rating: floatp(7.2), Runtime: nil,
			Genre: strp("Drama, Sci-Fi, Thriller"), Metascore: nil,
			Plot:      strp("Strange things begin to happen when a group of friends gather for a dinner party on an evening when a comet is passing overhead."),
			Directors: strp("James Ward Byrkit"), Stars: strp("Emily Baldoni, Maury Sterling, Nicholas Brendon"),
			Votes: strp("115,562"), Gross: nil,
			PosterURL: nil,
		},
		{
			ID: 32, Name: "Primer",
			Rating: floatp(6.9), Runtime: intp(77),
			Genre: strp("Drama, Sci-Fi, Thriller"), Metascore: floatp(68),
			Plot:      strp("Four friends and fledgling entrepreneurs discover that their invention has accidental and dangerous capabilities."),
			Directors: strp("Shane Carruth"), Stars: strp("Shane Carruth, David Sullivan, Casey Gooden"),
			Votes: strp("118,485"), Gross: nil,
			PosterURL: nil,
		},
		{
			ID: 33, Name: "The Vast of Night",
			Rating: floatp(6.7), Runtime: nil,
			Genre: strp("Mystery, Sci-Fi, Thriller"), Metascore: floatp(84),
			Plot:      strp("In 1950s New Mexico, a switchboard operator and a radio DJ discover a strange audio frequency that could change their town forever."),
			Directors: strp("Andrew Patterson"), Stars: strp("Sierra McCormick, Jake Horowitz, Gail Cronauer"),
			Votes: strp("31,554"), Gross: nil,
			PosterURL: nil,
		},
		{
			ID: 34, Name: "Threat Level Midnight",
			Rating: nil, Runtime: nil,
			Genre: strp("Action, Comedy"), Metascore: nil,
			Plot:      strp("Secret agent Michael Scarn comes out of retirement to stop Goldenface from blowing up the NHL All-Star Game."),
			Directors: strp("Michael Scott"), Stars: strp("Michael Scott, Dwight Schrute"),
			Votes: nil, Gross: nil,
			PosterURL: nil,
		},
	}
}
